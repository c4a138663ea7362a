package dto_test

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/mpyw/smkit/internal/dto"
)

type inner struct {
	Key   *string
	Value *string
}

type sample struct {
	Name    *string
	Secret  *string `sensitive:"true"`
	Blob    []byte
	Count   *int64
	Enabled *bool
	When    *time.Time
	Items   []inner
	Labels  []string
	Stages  map[string][]string
	Kind    string
	Nested  *inner
}

func full() *sample {
	return &sample{
		Name:    lo.ToPtr("db-creds"),
		Secret:  lo.ToPtr("hunter2"),
		Blob:    []byte{0x01, 0x02},
		Count:   lo.ToPtr(int64(7)),
		Enabled: lo.ToPtr(true),
		When:    lo.ToPtr(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)),
		Items:   []inner{{Key: lo.ToPtr("env"), Value: lo.ToPtr("prod")}},
		Labels:  []string{"AWSCURRENT"},
		Stages:  map[string][]string{"v1": {"AWSCURRENT"}, "v0": {"AWSPREVIOUS"}},
		Kind:    "asc",
		Nested:  &inner{Key: lo.ToPtr("k")},
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	t.Run("identical values", func(t *testing.T) {
		t.Parallel()

		assert.True(t, dto.Equal(full(), full()))
		assert.Equal(t, dto.Hash(full()), dto.Hash(full()))
	})

	t.Run("nil handling", func(t *testing.T) {
		t.Parallel()

		var a, b *sample
		assert.True(t, dto.Equal(a, b))
		assert.False(t, dto.Equal(a, full()))
		assert.False(t, dto.Equal(full(), b))
	})

	t.Run("empty structs", func(t *testing.T) {
		t.Parallel()

		assert.True(t, dto.Equal(&sample{}, &sample{}))
		assert.Equal(t, dto.Hash(&sample{}), dto.Hash(&sample{}))
	})

	t.Run("same instant in different zones", func(t *testing.T) {
		t.Parallel()

		a, b := full(), full()
		b.When = lo.ToPtr(a.When.In(time.FixedZone("JST", 9*60*60)))

		assert.True(t, dto.Equal(a, b))
		assert.Equal(t, dto.Hash(a), dto.Hash(b))
	})

	t.Run("nil and empty slices differ", func(t *testing.T) {
		t.Parallel()

		a, b := full(), full()
		a.Labels = nil
		b.Labels = []string{}

		assert.False(t, dto.Equal(a, b))
		assert.NotEqual(t, dto.Hash(a), dto.Hash(b))
	})

	mutations := map[string]func(s *sample){
		"name":    func(s *sample) { s.Name = lo.ToPtr("other") },
		"unset":   func(s *sample) { s.Name = nil },
		"empty":   func(s *sample) { s.Name = lo.ToPtr("") },
		"secret":  func(s *sample) { s.Secret = lo.ToPtr("hunter3") },
		"blob":    func(s *sample) { s.Blob = []byte{0x01} },
		"count":   func(s *sample) { s.Count = lo.ToPtr(int64(8)) },
		"enabled": func(s *sample) { s.Enabled = lo.ToPtr(false) },
		"when":    func(s *sample) { s.When = lo.ToPtr(s.When.Add(time.Second)) },
		"items":   func(s *sample) { s.Items[0].Value = lo.ToPtr("dev") },
		"labels":  func(s *sample) { s.Labels = append(s.Labels, "AWSPENDING") },
		"stages":  func(s *sample) { s.Stages["v2"] = []string{"AWSPENDING"} },
		"kind":    func(s *sample) { s.Kind = "desc" },
		"nested":  func(s *sample) { s.Nested = nil },
	}

	for name, mutate := range mutations {
		t.Run("differs by "+name, func(t *testing.T) {
			t.Parallel()

			a, b := full(), full()
			mutate(b)

			assert.False(t, dto.Equal(a, b))
			assert.NotEqual(t, dto.Hash(a), dto.Hash(b))
		})
	}
}

func TestHash_MapOrderIndependent(t *testing.T) {
	t.Parallel()

	a := &sample{Stages: map[string][]string{}}
	b := &sample{Stages: map[string][]string{}}

	for _, k := range []string{"a", "b", "c", "d"} {
		a.Stages[k] = []string{k}
	}

	for _, k := range []string{"d", "c", "b", "a"} {
		b.Stages[k] = []string{k}
	}

	assert.Equal(t, dto.Hash(a), dto.Hash(b))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		var s *sample
		assert.Equal(t, "<nil>", dto.Format(s))
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "sample{}", dto.Format(&sample{}))
	})

	t.Run("only set fields", func(t *testing.T) {
		t.Parallel()

		s := &sample{Name: lo.ToPtr("db-creds"), Count: lo.ToPtr(int64(3))}
		assert.Equal(t, `sample{Name: "db-creds", Count: 3}`, dto.Format(s))
	})

	t.Run("sensitive fields are redacted", func(t *testing.T) {
		t.Parallel()

		got := dto.Format(full())
		assert.NotContains(t, got, "hunter2")
		assert.Contains(t, got, "Secret: "+dto.Redacted)
	})

	t.Run("nested values", func(t *testing.T) {
		t.Parallel()

		got := dto.Format(full())
		assert.Contains(t, got, `Items: [{Key: "env", Value: "prod"}]`)
		assert.Contains(t, got, `Stages: {"v0": ["AWSPREVIOUS"], "v1": ["AWSCURRENT"]}`)
		assert.Contains(t, got, "When: 2024-01-02T03:04:05Z")
		assert.Contains(t, got, "Blob: AQI=")
		assert.Contains(t, got, `Kind: "asc"`)
		assert.Contains(t, got, "Enabled: true")
	})
}
