package export

import (
	"bytes"
	"testing"

	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/mocks"
	"github.com/phrazzld/studysmart/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	exporter := NewPDFExporter(nil)

	tests := []struct {
		name     string
		artifact *render.Artifact
	}{
		{
			name: "notes",
			artifact: render.RenderContent("Photosynthesis", domain.ContentTypeNotes,
				"Light reactions occur in thylakoids\nCalvin cycle fixes CO₂ – slowly"),
		},
		{
			name: "quiz",
			artifact: &render.Artifact{
				Type:  domain.ContentTypeMCQ,
				Topic: "Algebra",
				Quiz:  &domain.Quiz{Questions: mocks.SampleQuiz("Algebra")},
			},
		},
		{
			name:     "flashcards",
			artifact: render.RenderContent("Cells", domain.ContentTypeFlashcards, "Cell: unit of life\nRibosome: makes protein"),
		},
		{
			name:     "degraded",
			artifact: render.RenderContent("Broken", domain.ContentTypeMCQ, "not json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := exporter.Export(tt.artifact)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output is a PDF document")
			assert.Greater(t, len(out), 200)
		})
	}
}

func TestExportNil(t *testing.T) {
	_, err := NewPDFExporter(nil).Export(nil)
	assert.Error(t, err)
}
