package mpath

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsciify(t *testing.T) {
	got := Asciify("ÀÂÄÃÅàâáããä-ÈÊÉËèêéë-ÌÎÍÏìîíï-ÒÔÖØÓÕòôöøóõ-ÚÜÙÛúüùû-ÝýÿÑñÇçÆæßÐ")
	assert.Equal(t, "AAAAAaaaaaa-EEEEeeee-IIIIiiii-OOOOOOoooooo-UUUUuuuu-YyyNnCcAEaessD", got)
}

func TestAsciify_IdentityOutsideTable(t *testing.T) {
	for _, in := range []string{"", "plain ascii 123", "Łź", "日本語", "tab\tand\nnewline"} {
		assert.Equal(t, in, Asciify(in), "input %q", in)
	}
	// ó is folded, Ł and ź are not in the table
	assert.Equal(t, "Łodź", Asciify("Łódź"))
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "This is a test", Unquote(`"This is a 'test'"`))
	assert.Equal(t, "", Unquote(""))
	assert.Equal(t, "no quotes", Unquote("no quotes"))
}

func TestPathify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "sentence", in: "This is the 1st / test À...", want: "this-is-the-1st-test-a"},
		{name: "title", in: "Root 1", want: "root-1"},
		{name: "dotted name", in: "Grandchild A1.1", want: "grandchild-a1-1"},
		{name: "quotes removed not dashed", in: `Don't "stop"`, want: "dont-stop"},
		{name: "underscore kept", in: "snake_case Name", want: "snake_case-name"},
		{name: "surrounding space", in: "   padded   ", want: "padded"},
		{name: "leading and trailing punctuation", in: "--hello--", want: "hello"},
		{name: "ligature and sharp s", in: "Æsop Straße", want: "aesop-strasse"},
		{name: "no word characters", in: "!!! ???", want: ""},
		{name: "kelvin sign is not k", in: "\u212A", want: ""},
		{name: "dotted capital i dropped", in: "İstanbul", want: "stanbul"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pathify(tt.in))
		})
	}
}

func TestPathify_Properties(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9_-]*$`)
	inputs := []string{
		"Root 1", "  Ünïcödé  ÆØÅ  ", "a--b__c", "../etc/passwd", "100% sure!",
		"日本語 text", "'quoted'", "-", "Ça va? Très bien.", "x.y.z", "\t\n",
	}
	for _, in := range inputs {
		out := Pathify(in)
		assert.Regexp(t, valid, out, "input %q", in)
		if out != "" {
			assert.NotEqual(t, byte('-'), out[0], "input %q", in)
			assert.NotEqual(t, byte('-'), out[len(out)-1], "input %q", in)
		}
		assert.Equal(t, out, Pathify(out), "pathify must be idempotent for %q", in)
	}
}
