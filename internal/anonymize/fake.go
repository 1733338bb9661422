package anonymize

import (
	"fmt"
	"sort"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/anonify/anonify/internal/dataset"
)

// fakeKinds maps a configured fake_type to its generator. Kinds cover the
// identifier-like columns the original tool targets.
var fakeKinds = map[string]func(f *gofakeit.Faker) string{
	"name":     func(f *gofakeit.Faker) string { return f.Name() },
	"email":    func(f *gofakeit.Faker) string { return f.Email() },
	"address":  func(f *gofakeit.Faker) string { return f.Address().Address },
	"phone":    func(f *gofakeit.Faker) string { return f.Phone() },
	"username": func(f *gofakeit.Faker) string { return f.Username() },
	"city":     func(f *gofakeit.Faker) string { return f.City() },
	"company":  func(f *gofakeit.Faker) string { return f.Company() },
	"word":     func(f *gofakeit.Faker) string { return f.Word() },
}

// FakeKinds lists the supported fake_type names.
func FakeKinds() []string {
	kinds := make([]string, 0, len(fakeKinds))
	for k := range fakeKinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// FakeColumn replaces every non-null value with a freshly generated fake of
// the named kind.
func (a *Anonymizer) FakeColumn(values []string, kind string) ([]string, error) {
	gen, ok := fakeKinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown fake_type %q, available: %v", kind, FakeKinds())
	}
	out := make([]string, len(values))
	for i, v := range values {
		if v == dataset.Null {
			continue
		}
		out[i] = gen(a.faker)
	}
	return out, nil
}
