package eloquence

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------
// SCHEMA REGISTRY
// -----------------------------------------------------------------------------
// Modeller ve ilişkileri bir YAML dosyasından yüklenebilir:
//
//	models:
//	  User:
//	    table: users
//	    relations:
//	      profile:   {type: belongs_to, model: Profile, foreign_key: profile_id}
//	      companies: {type: belongs_to_many, model: Company, table: company_user,
//	                  foreign_pivot_key: user_id, related_pivot_key: company_id}
//	  Profile:
//	    morph_class: profile
//	    relations:
//	      company: {type: morph_one, model: Company, morph_name: morphable}
//	  Company: {}
//
// Tüm modeller önce oluşturulur, ilişkiler sonra bağlanır; modeller birbirine
// döngüsel olarak referans verebilir.
// -----------------------------------------------------------------------------

// SchemaFile, YAML dosyasının kök yapısıdır.
type SchemaFile struct {
	Models map[string]ModelSchema `yaml:"models"`
}

// ModelSchema, tek bir modelin tanımıdır. Boş alanlar varsayılanları kullanır.
type ModelSchema struct {
	Table       string                    `yaml:"table,omitempty"`
	Key         string                    `yaml:"key,omitempty"`
	MorphClass  string                    `yaml:"morph_class,omitempty"`
	SoftDeletes bool                      `yaml:"soft_deletes,omitempty"`
	DeletedAt   string                    `yaml:"deleted_at,omitempty"`
	Relations   map[string]RelationSchema `yaml:"relations,omitempty"`
}

// RelationSchema, tek bir ilişkinin tanımıdır.
type RelationSchema struct {
	Type            string `yaml:"type"`
	Model           string `yaml:"model,omitempty"`
	Through         string `yaml:"through,omitempty"`
	Table           string `yaml:"table,omitempty"`
	ForeignKey      string `yaml:"foreign_key,omitempty"`
	OwnerKey        string `yaml:"owner_key,omitempty"`
	LocalKey        string `yaml:"local_key,omitempty"`
	ForeignPivotKey string `yaml:"foreign_pivot_key,omitempty"`
	RelatedPivotKey string `yaml:"related_pivot_key,omitempty"`
	FirstKey        string `yaml:"first_key,omitempty"`
	SecondKey       string `yaml:"second_key,omitempty"`
	SecondLocalKey  string `yaml:"second_local_key,omitempty"`
	MorphName       string `yaml:"morph_name,omitempty"`
}

// Registry, adla erişilen model kümesidir.
type Registry struct {
	models map[string]*Entity
}

// NewRegistry, boş bir Registry oluşturur.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]*Entity)}
}

// Add, modeli kaydeder. Aynı adlı model varsa üzerine yazılır.
func (r *Registry) Add(e *Entity) *Registry {
	r.models[e.Name()] = e
	return r
}

// Model, adı verilen modeli döndürür.
func (r *Registry) Model(name string) (*Entity, error) {
	e, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}
	return e, nil
}

// Names, kayıtlı model adlarını alfabetik sırayla döndürür.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadSchemaFile, YAML dosyasını okuyup Registry üretir.
func LoadSchemaFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema %s: %w", path, err)
	}
	defer f.Close()

	return LoadSchema(f)
}

// LoadSchema, YAML içeriğinden Registry üretir.
func LoadSchema(r io.Reader) (*Registry, error) {
	var file SchemaFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	return file.Build()
}

// Build, tanımları Entity'lere çevirir.
func (f SchemaFile) Build() (*Registry, error) {
	registry := NewRegistry()

	for name, def := range f.Models {
		e := NewEntity(name)
		if def.Table != "" {
			e.SetTable(def.Table)
		}
		if def.Key != "" {
			e.SetKeyName(def.Key)
		}
		if def.MorphClass != "" {
			e.SetMorphClass(def.MorphClass)
		}
		if def.SoftDeletes || def.DeletedAt != "" {
			e.SoftDeletes(def.DeletedAt)
		}
		registry.Add(e)
	}

	for _, name := range registry.Names() {
		e := registry.models[name]
		for relName, def := range f.Models[name].Relations {
			if err := registry.bind(e, relName, def); err != nil {
				return nil, &RelationError{Model: name, Relation: relName, Err: err}
			}
		}
	}

	return registry, nil
}

func (r *Registry) bind(e *Entity, name string, def RelationSchema) error {
	if def.Type == "morph_to" {
		e.MorphTo(name, def.MorphName)
		return nil
	}

	related, err := r.Model(def.Model)
	if err != nil {
		return err
	}

	morphName := def.MorphName
	if morphName == "" {
		morphName = snake(name)
	}

	switch def.Type {
	case "belongs_to":
		e.BelongsTo(name, related, def.ForeignKey, def.OwnerKey)
	case "has_one":
		e.HasOne(name, related, def.ForeignKey, def.LocalKey)
	case "has_many":
		e.HasMany(name, related, def.ForeignKey, def.LocalKey)
	case "belongs_to_many":
		e.BelongsToMany(name, related, def.Table, def.ForeignPivotKey, def.RelatedPivotKey)
	case "has_many_through":
		through, err := r.Model(def.Through)
		if err != nil {
			return err
		}
		e.HasManyThrough(name, related, through, def.FirstKey, def.SecondKey, def.LocalKey, def.SecondLocalKey)
	case "morph_one":
		e.MorphOne(name, related, morphName)
	case "morph_many":
		e.MorphMany(name, related, morphName)
	case "morph_to_many":
		e.MorphToMany(name, related, morphName)
	case "morphed_by_many":
		e.MorphedByMany(name, related, morphName)
	default:
		return fmt.Errorf("%w: unknown relation type %q", ErrUnsupportedRelation, def.Type)
	}
	return nil
}
