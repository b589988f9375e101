// Package migrations embeds the versioned SQL schema of the order store, one
// directory per supported dialect, for use with golang-migrate.
package migrations

import (
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed postgres/*.sql mysql/*.sql
var files embed.FS

// Source returns the migration source for driver ("postgres" or "mysql").
func Source(driver string) (source.Driver, error) {
	switch driver {
	case "postgres", "mysql":
		return iofs.New(files, driver)
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
}
