// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package manifest

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/cargo-run-script/internal/ctxlog"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// DefaultPath is the manifest location, relative to the current working directory.
const DefaultPath = "Cargo.toml"

const (
	// SectionPackage is the top-level table used by a single crate.
	SectionPackage = "package"
	// SectionWorkspace is the top-level table used by a workspace root.
	SectionWorkspace = "workspace"
	metadataKey      = "metadata"
	scriptsKey       = "scripts"
)

var (
	// ErrManifestNotFound is returned when there is no manifest at the given path.
	ErrManifestNotFound = errors.New("manifest not found")
	// ErrReadManifest is returned when the manifest exists but cannot be read.
	ErrReadManifest = errors.New("failed to read manifest")
	// ErrManifestMalformed is returned when the manifest is not valid TOML or has no usable scripts table.
	ErrManifestMalformed = errors.New("manifest is malformed")
)

// Load reads the manifest at path from the filesystem returned by FsFactory and
// returns its scripts table.
func Load(ctx context.Context, path string) (ScriptTable, error) {
	logger := ctxlog.Logger(ctx).With("path", path)

	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ScriptTable{}, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}

		return ScriptTable{}, errors.Join(ErrReadManifest, err)
	}

	table, err := Parse(data)
	if err != nil {
		return ScriptTable{}, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("manifest loaded", "section", table.Section(), "scripts", table.Len())

	return table, nil
}

// Parse decodes manifest content and extracts the scripts table.
func Parse(data []byte) (ScriptTable, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return ScriptTable{}, fmt.Errorf("%w: line %d, column %d: %s", ErrManifestMalformed, row, col, derr.Error())
		}

		return ScriptTable{}, errors.Join(ErrManifestMalformed, err)
	}

	pkg, pkgFound, pkgErr := lookupScripts(doc, SectionPackage)
	ws, wsFound, wsErr := lookupScripts(doc, SectionWorkspace)

	if err := errors.Join(pkgErr, wsErr); err != nil {
		return ScriptTable{}, errors.Join(ErrManifestMalformed, err)
	}

	switch {
	case pkgFound && wsFound:
		return ScriptTable{}, fmt.Errorf(
			"%w: both %s and %s are defined, only one is allowed",
			ErrManifestMalformed, scriptsPath(SectionPackage), scriptsPath(SectionWorkspace),
		)
	case pkgFound:
		return newTableFromDocument(SectionPackage, pkg)
	case wsFound:
		return newTableFromDocument(SectionWorkspace, ws)
	}

	return ScriptTable{}, fmt.Errorf(
		"%w: expected a %s or %s table",
		ErrManifestMalformed, scriptsPath(SectionPackage), scriptsPath(SectionWorkspace),
	)
}

// lookupScripts walks section.metadata.scripts. A missing level is not an error,
// a level that exists but is not a table is.
func lookupScripts(doc map[string]any, section string) (map[string]any, bool, error) {
	current := doc
	keys := []string{section, metadataKey, scriptsKey}

	for i, key := range keys {
		v, ok := current[key]
		if !ok {
			return nil, false, nil
		}

		next, ok := v.(map[string]any)
		if !ok {
			return nil, false, fmt.Errorf("%s: expected a table, found %s", strings.Join(keys[:i+1], "."), kindOf(v))
		}

		current = next
	}

	return current, true, nil
}

func newTableFromDocument(section string, raw map[string]any) (ScriptTable, error) {
	var result *multierror.Error

	scripts := make(map[string]string, len(raw))

	for _, name := range slices.Sorted(maps.Keys(raw)) {
		body, ok := raw[name].(string)
		if !ok {
			result = multierror.Append(result, fmt.Errorf(
				"%s.%s: expected a string, found %s", scriptsPath(section), name, kindOf(raw[name]),
			))

			continue
		}

		scripts[name] = body
	}

	if err := result.ErrorOrNil(); err != nil {
		return ScriptTable{}, errors.Join(ErrManifestMalformed, err)
	}

	return ScriptTable{scripts: scripts, section: section}, nil
}

func scriptsPath(section string) string {
	return section + "." + metadataKey + "." + scriptsKey
}

// kindOf names the TOML type of a decoded value for error messages.
func kindOf(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case int64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case map[string]any:
		return "table"
	case []any:
		return "array"
	case time.Time, toml.LocalDate, toml.LocalTime, toml.LocalDateTime:
		return "datetime"
	default:
		return fmt.Sprintf("%T", v)
	}
}
