package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
)

func TestImageExtractor(t *testing.T) {
	t.Parallel()

	goodText := "The Krebs cycle oxidizes acetyl-CoA to produce NADH and FADH2."

	t.Run("missing engine rejects with configuration reason", func(t *testing.T) {
		t.Parallel()
		extractor := NewImageExtractor(nil)

		_, _, err := extractor.Extract(context.Background(), RawMaterial{Data: []byte{0x89}})
		var rejection *domain.ExtractionError
		require.True(t, errors.As(err, &rejection))
		assert.Equal(t, "image recognition is not configured", rejection.Reason)
	})

	t.Run("low confidence attaches a warning", func(t *testing.T) {
		t.Parallel()
		extractor := NewImageExtractor(func(context.Context, []byte) (string, float64, error) {
			return goodText, 0.4, nil
		})

		text, warnings, err := extractor.Extract(context.Background(), RawMaterial{Data: []byte{0x89}})
		require.NoError(t, err)
		assert.Equal(t, goodText, text)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "low OCR confidence")
	})

	t.Run("confident result carries no warnings", func(t *testing.T) {
		t.Parallel()
		extractor := NewImageExtractor(func(context.Context, []byte) (string, float64, error) {
			return goodText, 0.95, nil
		})

		_, warnings, err := extractor.Extract(context.Background(), RawMaterial{Data: []byte{0x89}})
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("engine failure maps to an actionable rejection", func(t *testing.T) {
		t.Parallel()
		extractor := NewImageExtractor(func(context.Context, []byte) (string, float64, error) {
			return "", 0, errors.New("tesseract exited 1")
		})

		_, _, err := extractor.Extract(context.Background(), RawMaterial{Data: []byte{0x89}})
		var rejection *domain.ExtractionError
		require.True(t, errors.As(err, &rejection))
		assert.Equal(t, "could not read text from the image", rejection.Reason)
		assert.NotEmpty(t, rejection.Suggestion)
	})
}

func TestAudioExtractor(t *testing.T) {
	t.Parallel()

	transcript := "Today we discuss supply and demand curves and market equilibrium."

	t.Run("missing engine rejects with configuration reason", func(t *testing.T) {
		t.Parallel()
		extractor := NewAudioExtractor(nil)

		_, _, err := extractor.Extract(context.Background(), RawMaterial{Data: []byte{0xFF}})
		var rejection *domain.ExtractionError
		require.True(t, errors.As(err, &rejection))
		assert.Equal(t, "audio transcription is not configured", rejection.Reason)
	})

	t.Run("low confidence attaches a warning", func(t *testing.T) {
		t.Parallel()
		extractor := NewAudioExtractor(func(context.Context, []byte) (string, float64, error) {
			return transcript, 0.5, nil
		})

		text, warnings, err := extractor.Extract(context.Background(), RawMaterial{Data: []byte{0xFF}})
		require.NoError(t, err)
		assert.Equal(t, transcript, text)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "low transcription confidence")
	})

	t.Run("engine failure maps to an actionable rejection", func(t *testing.T) {
		t.Parallel()
		extractor := NewAudioExtractor(func(context.Context, []byte) (string, float64, error) {
			return "", 0, errors.New("whisper timed out")
		})

		_, _, err := extractor.Extract(context.Background(), RawMaterial{Data: []byte{0xFF}})
		var rejection *domain.ExtractionError
		require.True(t, errors.As(err, &rejection))
		assert.Equal(t, "could not transcribe the audio", rejection.Reason)
	})
}

func TestAdapterRoutesMediaUploads(t *testing.T) {
	t.Parallel()

	t.Run("image upload reaches the OCR extractor by extension", func(t *testing.T) {
		t.Parallel()
		adapter := NewAdapter(nil, NewImageExtractor(func(context.Context, []byte) (string, float64, error) {
			return "Cellular respiration releases energy stored in glucose molecules.", 0.3, nil
		}))

		result, err := adapter.Extract(context.Background(), RawMaterial{Filename: "slide.png", Data: []byte{0x89}})
		require.NoError(t, err)
		assert.Equal(t, domain.SourceImage, result.SourceType)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "low OCR confidence")
	})

	t.Run("audio upload without an engine rejects with the configuration reason", func(t *testing.T) {
		t.Parallel()
		adapter := NewAdapter(nil, NewAudioExtractor(nil))

		_, err := adapter.Extract(context.Background(), RawMaterial{Filename: "lecture.mp3", Data: []byte{0xFF}})
		var rejection *domain.ExtractionError
		require.True(t, errors.As(err, &rejection))
		assert.Equal(t, "audio transcription is not configured", rejection.Reason)
	})
}
