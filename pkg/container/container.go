// pkg/container/container.go
package container

import (
	"fmt"
	"reflect"
	"sync"
)

// @author    Ahmet Altun
// @email     ahmet.altun60@gmail.com
// @github    github.com/biyonik
// @linkedin  linkedin.com/in/biyonik

// Container, bağımlılıkları yöneten DI konteyneridir.
// Servisleri (bağlantı, grammar, cache, kolon registry'si, joiner fabrikası)
// "tembel" (lazy) olarak yükler ve singleton (tekil) olarak saklar.
type Container struct {
	mu        sync.RWMutex
	factories map[reflect.Type]func(*Container) (any, error)
	instances map[reflect.Type]any
}

// New, yeni bir boş DI konteyneri oluşturur.
func New() *Container {
	return &Container{
		factories: make(map[reflect.Type]func(*Container) (any, error)),
		instances: make(map[reflect.Type]any),
	}
}

// Register, bir servisi konteynere kaydeder.
// Kayıt, bir "fabrika" (factory) fonksiyonu aracılığıyla yapılır.
// Bu fonksiyon, servis ilk kez 'Get' ile istendiğinde çalıştırılır.
// Servisin anahtarı, fabrikanın ilk dönüş değerinin tipidir.
//
// Örnek:
//
//	c.Register(func(c *Container) (*sql.DB, error) {
//	    cfg := GetConfig(c)
//	    return database.Connect(cfg.DB.Driver, cfg.DB.DSN, pool, GetLogger(c))
//	})
func (c *Container) Register(provider any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Gelen 'provider'ın bir fonksiyon olduğunu doğrula
	providerType := reflect.TypeOf(provider)
	if providerType.Kind() != reflect.Func {
		panic(fmt.Sprintf("container: Register() parametresi bir fonksiyon olmalıdır, %T alındı", provider))
	}

	// Fonksiyonun bir 'Container' parametresi aldığını doğrula
	if providerType.NumIn() != 1 || providerType.In(0) != reflect.TypeOf(c) {
		panic("container: Register() fonksiyonu parametre olarak sadece *container.Container almalıdır")
	}

	// Fonksiyonun (any, error) döndüğünü doğrula
	if providerType.NumOut() != 2 || !providerType.Out(1).Implements(reflect.TypeOf((*error)(nil)).Elem()) {
		panic("container: Register() fonksiyonu (any, error) döndürmelidir")
	}

	// Servisin tipini (ilk dönüş değeri) anahtar olarak kullan.
	// Fabrika somut imzasıyla çağrılabilsin diye reflect ile sarılır.
	serviceType := providerType.Out(0)
	fn := reflect.ValueOf(provider)
	c.factories[serviceType] = func(c *Container) (any, error) {
		out := fn.Call([]reflect.Value{reflect.ValueOf(c)})
		if errValue := out[1].Interface(); errValue != nil {
			return nil, errValue.(error)
		}
		return out[0].Interface(), nil
	}
}

// Instance, önceden oluşturulmuş bir değeri verilen tip için kaydeder.
//
//	c.Instance(reflect.TypeOf((*log.Logger)(nil)), logger)
func (c *Container) Instance(serviceType reflect.Type, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances[serviceType] = instance
}

// Has, tip için kayıtlı bir fabrika veya örnek olup olmadığını söyler.
func (c *Container) Has(serviceType reflect.Type) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[serviceType]
	if !ok {
		_, ok = c.factories[serviceType]
	}
	return ok
}

// Get, bir servisi konteynerdan tipine göre çözer (resolve).
// Eğer servis daha önce çözüldüyse, mevcut (singleton) örnek döndürülür.
// Eğer çözülmediyse, fabrikası çalıştırılır, sonuç saklanır ve döndürülür.
func (c *Container) Get(serviceType reflect.Type) (any, error) {
	// Önce mevcut örnek var mı diye bak (hızlı yol)
	c.mu.RLock()
	instance, ok := c.instances[serviceType]
	c.mu.RUnlock()

	if ok {
		return instance, nil
	}

	// Servis fabrikasını bul
	c.mu.RLock()
	factory, ok := c.factories[serviceType]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("container: %s tipi için bir servis kaydı bulunamadı", serviceType)
	}

	// Fabrika kilit dışında çalışır; kendi bağımlılıkları için Get çağırabilir.
	instance, err := factory(c)
	if err != nil {
		return nil, fmt.Errorf("container: %s tipi oluşturulurken hata: %w", serviceType, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Başka bir goroutine aynı servisi önce oluşturduysa onunki kazanır
	if existing, ok := c.instances[serviceType]; ok {
		return existing, nil
	}
	c.instances[serviceType] = instance
	return instance, nil
}

// MustGet, 'Get' metodunu çağırır ama hata durumunda 'panic' yapar.
// Bu, uygulamanın başlatılması (bootstrap) sırasında, servislerin
// varlığından emin olduğumuzda kullanılır.
func (c *Container) MustGet(serviceType reflect.Type) any {
	instance, err := c.Get(serviceType)
	if err != nil {
		panic(err)
	}
	return instance
}
