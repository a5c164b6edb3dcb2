// Command hamlc batch-compiles templates listed in a YAML manifest into
// generated Starlark or Risor source files, one artifact per template. The
// artifacts can be loaded by convention from a host application without
// recompiling the templates at startup.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tavener/go-hamlet/engines/risor"
	"github.com/tavener/go-hamlet/engines/starlark"
	"github.com/tavener/go-hamlet/haml"
	"github.com/tavener/go-hamlet/platform/template"
	"github.com/tavener/go-hamlet/platform/template/loader"

	engineTypes "github.com/tavener/go-hamlet/engines/types"
)

type manifest struct {
	// Engine selects the compilation target: "starlark" (default) or "risor".
	Engine string `yaml:"engine"`

	// Namespace overrides the namespace object generated functions are
	// registered in.
	Namespace string `yaml:"namespace"`

	// Format selects the output markup format: html5 (default), html4, xhtml.
	Format string `yaml:"format"`

	// Escape toggles HTML escaping of evaluated output. Defaults to on.
	Escape *bool `yaml:"escape"`

	// CustomEscape names a host-provided escaping function to use instead of
	// the generated built-in one.
	CustomEscape string `yaml:"custom_escape"`

	// Output is the directory generated files are written into.
	Output string `yaml:"output"`

	Templates []manifestTemplate `yaml:"templates"`
}

type manifestTemplate struct {
	// Path is the template file on disk.
	Path string `yaml:"path"`

	// Name is the logical template path that determines the generated
	// function's name and namespace location. Defaults to Path.
	Name string `yaml:"name"`
}

func loadManifest(path string) (*manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m manifest
	if err := yaml.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if len(m.Templates) == 0 {
		return nil, fmt.Errorf("manifest lists no templates")
	}
	return &m, nil
}

func main() {
	manifestPath := flag.String("manifest", "hamlc.yaml", "path to the compilation manifest")
	outDir := flag.String("out", "", "output directory, overrides the manifest")
	engineName := flag.String("engine", "", "target engine, overrides the manifest")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	if err := run(handler, logger, *manifestPath, *outDir, *engineName); err != nil {
		logger.Error("compilation failed", "error", err)
		os.Exit(1)
	}
}

func run(handler slog.Handler, logger *slog.Logger, manifestPath, outDir, engineName string) error {
	m, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}

	if engineName == "" {
		engineName = m.Engine
	}
	engine, err := engineTypes.Parse(engineName)
	if err != nil {
		return err
	}

	if outDir == "" {
		outDir = m.Output
	}
	if outDir == "" {
		outDir = "."
	}

	for _, t := range m.Templates {
		if err := compileOne(handler, logger, m, t, engine, outDir); err != nil {
			return fmt.Errorf("%s: %w", t.Path, err)
		}
	}

	logger.Info("manifest compiled", "templates", len(m.Templates), "engine", engine, "output", outDir)
	return nil
}

func compileOne(
	handler slog.Handler,
	logger *slog.Logger,
	m *manifest,
	t manifestTemplate,
	engine engineTypes.Type,
	outDir string,
) error {
	ldr, err := loader.NewFromDisk(t.Path)
	if err != nil {
		return err
	}

	name := t.Name
	if name == "" {
		name = t.Path
	}

	opts := haml.DefaultOptions()
	opts.Path = name
	if m.Namespace != "" {
		opts.Namespace = m.Namespace
	}
	if m.Format != "" {
		format, err := haml.ParseFormat(m.Format)
		if err != nil {
			return err
		}
		opts.Format = format
	}
	if m.Escape != nil {
		opts.EscapeHTML = *m.Escape
	}
	opts.CustomEscape = m.CustomEscape

	var comp template.Compiler
	var ext string
	switch engine {
	case engineTypes.Starlark:
		ext = ".star"
		comp, err = starlark.NewCompiler(
			starlark.WithLogHandler(handler),
			starlark.WithOptions(opts),
		)
	case engineTypes.Risor:
		ext = ".risor"
		comp, err = risor.NewCompiler(
			risor.WithLogHandler(handler),
			risor.WithOptions(opts),
		)
	default:
		return fmt.Errorf("unsupported engine type: %s", engine)
	}
	if err != nil {
		return err
	}

	reader, err := ldr.GetReader()
	if err != nil {
		return err
	}

	content, err := comp.Compile(reader)
	if err != nil {
		return err
	}

	rel := filepath.Join(haml.PathSegments(name)...) + ext
	dest := filepath.Join(outDir, rel)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dest, []byte(content.GetGeneratedSource()), 0o644); err != nil {
		return err
	}

	logger.Info("compiled",
		"template", t.Path,
		"entrypoint", content.GetEntrypoint(),
		"output", dest)
	return nil
}
