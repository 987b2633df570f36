package tracelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   []string
		want     string
	}{
		{"no placeholders", "plain message", []string{"a"}, "plain message"},
		{"single placeholder", "Hello {name}", []string{"name"}, "Hello {0}"},
		{"two placeholders", "{from} -> {to}", []string{"from", "to"}, "{0} -> {1}"},
		{"repeated placeholder", "{id} and {id} again", []string{"id"}, "{0} and {0} again"},
		{"subset of params", "failure {code}", []string{"ex", "code"}, "failure {1}"},
		{"placeholder mid-word", "x{a}y{b}z", []string{"a", "b"}, "x{0}y{1}z"},
		{"empty template", "", []string{"a"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateTemplate(tt.template, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			// no parameter-name tokens survive validation
			for _, p := range tt.params {
				assert.NotContains(t, got, "{"+p+"}")
			}
		})
	}
}

func TestValidateTemplateErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   []string
		token    string
	}{
		{"undeclared name", "Hello {unknown}", []string{"name"}, "{unknown}"},
		{"case sensitive", "Hello {Name}", []string{"name"}, "{Name}"},
		{"empty braces", "oops {}", nil, "{}"},
		{"unclosed brace", "broken {name", []string{"name"}, "{name"},
		{"bare closing brace", "broken } here", nil, "}"},
		{"nested open brace", "a {{name} b", []string{"name"}, "{"},
		{"undeclared after valid", "{ok} then {bad}", []string{"ok"}, "{bad}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateTemplate(tt.template, tt.params)
			require.Error(t, err)

			terr, ok := err.(*TemplateError)
			require.True(t, ok, "expected *TemplateError, got %T", err)
			assert.Equal(t, tt.token, terr.Token)
			assert.Equal(t, tt.template, terr.Template)
		})
	}
}

func TestValidateTemplateLeavesLiteralText(t *testing.T) {
	got, err := validateTemplate("count={n} ratio=50%", []string{"n"})
	require.NoError(t, err)
	assert.Equal(t, "count={0} ratio=50%", got)
}
