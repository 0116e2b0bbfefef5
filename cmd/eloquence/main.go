// -----------------------------------------------------------------------------
// eloquence CLI
// -----------------------------------------------------------------------------
// Şema dosyasındaki bir model için ilişki path'ini join'lere çevirir ve
// üretilen SQL'i yazdırır:
//
//	eloquence -schema schema.yaml -model User -path profile.company -type left -dialect sqlite
//
// -columns verildiğinde veritabanına bağlanıp modelin kolonlarını (cache
// üzerinden) listeler. Bağlantı ayarları ortam değişkenlerinden okunur.
// -----------------------------------------------------------------------------

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/biyonik/eloquence/internal/bootstrap"
	"github.com/biyonik/eloquence/internal/config"
	"github.com/biyonik/eloquence/pkg/container"
	"github.com/biyonik/eloquence/pkg/database"
	"github.com/biyonik/eloquence/pkg/eloquence"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	schema  string
	model   string
	path    string
	join    string
	dialect string
	count   bool
	columns bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("eloquence", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.schema, "schema", "", "model şema dosyası (varsayılan SCHEMA_FILE)")
	fs.StringVar(&opts.model, "model", "", "kök model adı")
	fs.StringVar(&opts.path, "path", "", "noktalı ilişki path'i, ör. profile.company")
	fs.StringVar(&opts.join, "type", "inner", "join tipi: inner, left, right")
	fs.StringVar(&opts.dialect, "dialect", "", "SQL lehçesi: mysql, sqlite, postgres (varsayılan DB_DRIVER)")
	fs.BoolVar(&opts.count, "count", false, "sayfalama sayım sorgusunu da yazdır")
	fs.BoolVar(&opts.columns, "columns", false, "veritabanına bağlanıp modelin kolonlarını listele")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.model == "" {
		return nil, errors.New("-model zorunludur")
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := log.New(stderr, "", log.LstdFlags)
	cfg := (&config.Loader{Logger: log.New(io.Discard, "", 0)}).Load()
	if opts.schema != "" {
		cfg.Schema.File = opts.schema
	}
	if opts.dialect != "" {
		cfg.DB.Driver = strings.ToLower(opts.dialect)
	}

	c := container.New()
	bootstrap.Register(c, cfg, logger)

	registry, err := c.Get(container.RegistryType)
	if err != nil {
		return err
	}
	model, err := registry.(*eloquence.Registry).Model(opts.model)
	if err != nil {
		return err
	}

	if opts.columns {
		return printColumns(c, model, stdout)
	}

	joinType, ok := database.ParseJoinType(opts.join)
	if !ok {
		return fmt.Errorf("%w: %s", eloquence.ErrInvalidJoinType, opts.join)
	}

	query := eloquence.NewBuilder(database.NewBuilder(nil, container.GetGrammar(c)), model)
	if opts.path != "" {
		last, err := query.JoinWithType(opts.path, joinType)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "-- %s -> %s (%s)\n", model.Name(), last.Name(), last.Table())
	}

	sql, bindings, err := query.ToSQL()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, sql)
	fmt.Fprintf(stdout, "-- bindings: %v\n", bindings)

	if opts.count {
		countSQL, _, err := query.Query().ToCountSQL()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, countSQL)
	}
	return nil
}

func printColumns(c *container.Container, model eloquence.Model, stdout io.Writer) error {
	if _, err := c.Get(container.DatabaseType); err != nil {
		return err
	}
	defer container.GetDatabase(c).Close()

	columns, err := container.GetColumnRegistry(c).ModelColumns(context.Background(), model)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s (%s): %s\n", model.Name(), model.Table(), strings.Join(columns, ", "))
	return nil
}
