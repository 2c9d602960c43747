package purl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"pkg:npm/foo@1.0.0", "pkg:npm/foo@1.0.0"},
		{"pkg:oci/app@sha256:abc?arch=amd64", "pkg:oci/app@sha256:abc"},
		{"pkg:generic/x@1?a=1?b=2", "pkg:generic/x@1?a=1"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Base(tt.in), "Base(%q)", tt.in)
	}
}

func TestGroupByBase(t *testing.T) {
	groups := GroupByBase([]string{
		"pkg:rpm/a@1?arch=x86_64",
		"pkg:rpm/b@1",
		"pkg:rpm/a@1?arch=aarch64",
	})
	require.Len(t, groups, 2)
	assert.Equal(t, "pkg:rpm/a@1", groups[0].Base)
	assert.Equal(t, []string{"pkg:rpm/a@1?arch=x86_64", "pkg:rpm/a@1?arch=aarch64"}, groups[0].Locators)
	assert.Equal(t, "pkg:rpm/b@1", groups[1].Base)
}

func TestDominant(t *testing.T) {
	tests := []struct {
		name     string
		locators []string
		want     string
		wantOK   bool
	}{
		{"empty", nil, "", false},
		{"single", []string{"pkg:npm/foo@1"}, "pkg:npm/foo@1", true},
		{
			name:     "largest group wins",
			locators: []string{"pkg:npm/a@1", "pkg:npm/b@1?x=1", "pkg:npm/b@1?x=2"},
			want:     "pkg:npm/b@1?x=1",
			wantOK:   true,
		},
		{
			name:     "tie goes to first seen",
			locators: []string{"pkg:npm/b@1", "pkg:npm/a@1", "pkg:npm/a@1?x=1", "pkg:npm/b@1?x=1"},
			want:     "pkg:npm/b@1",
			wantOK:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Dominant(tt.locators)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	p, err := Parse("pkg:oci/app@sha256%3Aabcdef0123456789?arch=amd64&repository_url=quay.io/app")
	require.NoError(t, err)
	assert.Equal(t, TypeOCI, p.Type)
	assert.Equal(t, "app", p.Name)
	assert.Equal(t, "sha256:abcdef0123456789", p.Version)
	assert.Equal(t, "amd64", p.Qualifier(QualifierArch))
	assert.Equal(t, "", p.Qualifier(QualifierDownloadURL))

	p, err = Parse("pkg:maven/org.apache/commons-io@2.11")
	require.NoError(t, err)
	assert.Equal(t, "org.apache", p.Namespace)
	assert.Equal(t, "commons-io", p.Name)

	_, err = Parse("not a purl")
	assert.Error(t, err)
}
