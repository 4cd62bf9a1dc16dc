package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/model"
)

func TestByteSize_String(t *testing.T) {
	tests := []struct {
		name string
		size model.ByteSize
		want string
	}{
		{name: "zero", size: 0, want: "0 B"},
		{name: "negative", size: -10, want: "0 B"},
		{name: "bytes", size: 512, want: "512 B"},
		{name: "just below KB", size: 1000, want: "1000 B"},
		{name: "one KB", size: 1024, want: "1 KB"},
		{name: "one and a half KB", size: 1536, want: "1.5 KB"},
		{name: "two decimals", size: 1234, want: "1.21 KB"},
		{name: "one MB", size: 1 << 20, want: "1 MB"},
		{name: "one GB", size: 1 << 30, want: "1 GB"},
		{name: "beyond GB stays in GB", size: 5 << 40, want: "5120 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, tt.size.String(), tt.want)
		})
	}
}
