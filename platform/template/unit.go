package template

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tavener/go-hamlet/internal/helpers"
	"github.com/tavener/go-hamlet/platform/data"
	"github.com/tavener/go-hamlet/platform/template/loader"

	engineTypes "github.com/tavener/go-hamlet/engines/types"
)

const checksumLength = 12

// TemplateUnit represents a specific version of a template, including its
// compiled content and creation time. It is the handle for the "compile
// once, render many times" pattern: renderers hold one unit and execute it
// with varying data.
type TemplateUnit struct {
	// ID is a unique identifier for this unit, by default derived from a
	// hash of the template source.
	ID string

	// CreatedAt records when this unit was instantiated.
	CreatedAt time.Time

	// SourceLoader loads the template source from various places (file,
	// string, reader).
	SourceLoader loader.Loader

	// Compiler is the engine-specific compiler that produced this unit.
	Compiler Compiler

	// Content holds the template source, the generated module text and the
	// compiled bytecode.
	Content GeneratedContent

	// DataProvider supplies the data context at render time. When created
	// with NewTemplateUnit this is typically a CompositeProvider layering
	// runtime data over static compile-time data.
	DataProvider data.Provider

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewTemplateUnit creates a unit from the provided loader and compiler. The
// dataProvider supplies runtime render data; static template data (sData) is
// layered underneath it with a CompositeProvider.
func NewTemplateUnit(
	handler slog.Handler,
	versionID string,
	sourceLoader loader.Loader,
	compiler Compiler,
	dataProvider data.Provider,
	sData map[string]any,
) (*TemplateUnit, error) {
	handler, logger := helpers.SetupLogger(handler, "template", "TemplateUnit")

	if compiler == nil {
		return nil, errors.New("compiler is nil")
	}
	if sourceLoader == nil {
		return nil, errors.New("loader is nil")
	}

	reader, err := sourceLoader.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}

	content, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if versionID == "" {
		versionID = helpers.SHA256(content.GetSource())
		if len(versionID) > checksumLength {
			versionID = versionID[:checksumLength]
		}
	}

	staticProvider := data.NewStaticProvider(sData)

	// Runtime data overrides compile-time data for duplicate keys, so the
	// static provider goes first.
	var combinedProvider data.Provider
	if dataProvider != nil {
		combinedProvider = data.NewCompositeProvider(staticProvider, dataProvider)
	} else {
		combinedProvider = staticProvider
	}

	return &TemplateUnit{
		ID:           versionID,
		CreatedAt:    time.Now(),
		SourceLoader: sourceLoader,
		Compiler:     compiler,
		Content:      content,
		DataProvider: combinedProvider,
		logHandler:   handler,
		logger:       logger.With("ID", versionID),
	}, nil
}

func (u *TemplateUnit) String() string {
	return fmt.Sprintf("template.TemplateUnit{ID: %s, CreatedAt: %s, Compiler: %s, Loader: %s}",
		u.ID, u.CreatedAt, u.Compiler, u.SourceLoader)
}

// GetID returns the unique identifier for this template version.
func (u *TemplateUnit) GetID() string { return u.ID }

// GetContent returns the compiled content of the unit.
func (u *TemplateUnit) GetContent() GeneratedContent { return u.Content }

// GetCreatedAt returns the timestamp when the unit was created.
func (u *TemplateUnit) GetCreatedAt() time.Time { return u.CreatedAt }

// GetEngineType returns the engine this unit's generated code runs on.
func (u *TemplateUnit) GetEngineType() engineTypes.Type {
	return u.Content.GetEngineType()
}

// GetCompiler returns the compiler that produced this unit.
func (u *TemplateUnit) GetCompiler() Compiler { return u.Compiler }

// GetLoader returns the loader the template source came from.
func (u *TemplateUnit) GetLoader() loader.Loader { return u.SourceLoader }

// GetDataProvider returns the data provider for this unit.
func (u *TemplateUnit) GetDataProvider() data.Provider { return u.DataProvider }
