package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	coerce "github.com/reoring/coerce"
	"github.com/reoring/coerce/i18n"
	"github.com/reoring/coerce/isodate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "coerce CLI\n\nUsage:\n  coerce validate -schema schema.{json,yaml} [-strict] [-lang en|ja] [input]\n\nNotes:\n  - input is a JSON or YAML file; stdin is read when omitted.\n  - on success the typed value is printed as JSON; on failure each issue is\n    printed to stderr and the exit code is 1.")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath string
	var strict bool
	var lang string
	fs.StringVar(&schemaPath, "schema", "", "schema definition file (JSON or YAML)")
	fs.BoolVar(&strict, "strict", false, "use strict coercion")
	fs.StringVar(&lang, "lang", "en", "message language (en/ja)")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	schema, err := loadSchema(schemaPath)
	if err != nil {
		reportIssues(err)
		os.Exit(1)
	}

	data, name, err := readInput(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "coerce: %v\n", err)
		os.Exit(2)
	}

	mode := coerce.Lax
	if strict {
		mode = coerce.Strict
	}
	ctx := context.Background()
	var out any
	if isYAMLPath(name) {
		out, err = coerce.ValidateYAML(ctx, schema, data, mode)
	} else {
		out, err = coerce.ValidateJSON(ctx, schema, data, mode)
	}
	if err != nil {
		reportIssues(err)
		os.Exit(1)
	}
	enc := j.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(printable(out)); err != nil {
		fmt.Fprintf(os.Stderr, "coerce: %v\n", err)
		os.Exit(1)
	}
}

func loadSchema(path string) (*coerce.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("coerce: %w", err)
	}
	var def any
	if isYAMLPath(path) {
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("coerce: schema %s: %w", path, err)
		}
	} else {
		if err := j.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("coerce: schema %s: %w", path, err)
		}
	}
	return coerce.FromDefinition(def)
}

func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		return data, "stdin.json", err
	}
	data, err := os.ReadFile(args[0])
	return data, args[0], err
}

func isYAMLPath(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func reportIssues(err error) {
	if iss, ok := coerce.AsIssues(err); ok {
		for _, it := range iss {
			fmt.Fprintf(os.Stderr, "%s at %s: %s (input: %v)\n", it.Kind, it.Loc, it.Message, it.Input)
		}
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

// printable rewrites typed output into JSON-encodable form: dates and
// datetimes render canonically, dict keys become strings.
func printable(v any) any {
	switch t := v.(type) {
	case isodate.Date:
		return t.String()
	case isodate.DateTime:
		return t.String()
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[printableKey(k)] = printable(val)
		}
		return out
	default:
		return v
	}
}

func printableKey(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case isodate.Date:
		return t.String()
	case isodate.DateTime:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
