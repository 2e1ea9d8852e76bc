//go:build !ocr

package ocr

import (
	"errors"
	"image"
	"testing"
)

func TestNewReturnsError(t *testing.T) {
	client, err := New()
	if err == nil {
		t.Error("Expected error from New() when OCR is disabled")
	}
	if !errors.Is(err, ErrNotEnabled) {
		t.Errorf("Expected ErrNotEnabled, got: %v", err)
	}
	if client != nil {
		t.Error("Expected nil client when OCR is disabled")
	}
}

func TestEnabledFalse(t *testing.T) {
	if Enabled() {
		t.Error("Expected Enabled() to be false without the ocr build tag")
	}
}

func TestStubMethodsReturnError(t *testing.T) {
	client := &Client{}

	if _, err := client.Recognize(image.NewGray(image.Rect(0, 0, 1, 1))); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("Recognize error = %v, want ErrNotEnabled", err)
	}
	if _, err := client.RecognizeImage(nil); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("RecognizeImage error = %v, want ErrNotEnabled", err)
	}
	if err := client.SetLanguage("eng"); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("SetLanguage error = %v, want ErrNotEnabled", err)
	}
}

func TestCloseOnNilClient(t *testing.T) {
	var client *Client
	err := client.Close()
	if err != nil {
		t.Errorf("Close on nil client should not error: %v", err)
	}
}
