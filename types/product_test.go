package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImageRef(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		expected ImageRef
	}{
		{"canonical", `{"kind":"url","value":"https://cdn.example.com/tank.jpg"}`, ImageRef{ImageKindURL, "https://cdn.example.com/tank.jpg"}},
		{"legacy url object", `{"url":"https://cdn.example.com/tank.jpg"}`, ImageRef{ImageKindURL, "https://cdn.example.com/tank.jpg"}},
		{"legacy path object", `{"path":"uploads/tank.jpg"}`, ImageRef{ImageKindPath, "uploads/tank.jpg"}},
		{"bare url string", `"https://cdn.example.com/tank.jpg"`, ImageRef{ImageKindURL, "https://cdn.example.com/tank.jpg"}},
		{"bare path string", `"uploads/tank.jpg"`, ImageRef{ImageKindPath, "uploads/tank.jpg"}},
		{"bare filename", `"tank.jpg"`, ImageRef{ImageKindFilename, "tank.jpg"}},
		{"unquoted filename", `tank.jpg`, ImageRef{ImageKindFilename, "tank.jpg"}},
		{"empty", ``, ImageRef{}},
		{"null", `null`, ImageRef{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseImageRef([]byte(tc.raw)))
		})
	}
}
