package cursor

import "testing"

func TestMerge(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		parts   []Part
		want    string
	}{
		{"no parts", "Hello", nil, "Hello"},
		{"conc", "Hello ", []Part{Conc("World")}, "Hello World"},
		{"cont", "Hello", []Part{Cont("World")}, "Hello\nWorld"},
		{"mixed", "Hello ", []Part{Conc("World"), Cont("Bye")}, "Hello World\nBye"},
		{"empty initial", "", []Part{Conc("text")}, "text"},
		{"empty cont", "a", []Part{Cont(""), Cont("b")}, "a\n\nb"},
		{"foreign tag ignored", "a", []Part{{Tag: "NOTE", Value: "x"}, Conc("b")}, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Merge(tt.initial, tt.parts...); got != tt.want {
				t.Errorf("Merge() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergeLeftToRight(t *testing.T) {
	parts := []Part{Conc("b"), Cont("c"), Conc("d"), Cont("e")}
	whole := Merge("a", parts...)
	for i := range parts {
		stepped := Merge(Merge("a", parts[:i]...), parts[i:]...)
		if stepped != whole {
			t.Errorf("split at %d: %q != %q", i, stepped, whole)
		}
	}
}

func TestContinue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantNext string
	}{
		{
			name:     "conc and cont",
			input:    "1 NOTE Hello \n2 CONC World\n2 CONT Bye\n1 SEX F\n",
			want:     "Hello World\nBye",
			wantNext: "SEX",
		},
		{
			name:     "no continuation",
			input:    "1 NOTE Hello\n1 NOTE Again\n",
			want:     "Hello",
			wantNext: "NOTE",
		},
		{
			name:     "wrong level stops",
			input:    "1 NOTE Hello\n3 CONC lost\n",
			want:     "Hello",
			wantNext: "CONC",
		},
		{
			name:     "child tag stops",
			input:    "1 NOTE Hello\n2 SOUR @S1@\n2 CONC after\n",
			want:     "Hello",
			wantNext: "SOUR",
		},
		{
			name:  "at end of input",
			input: "1 NOTE a\n2 CONT b",
			want:  "a\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.input)
			head, err := c.Consume()
			if err != nil {
				t.Fatal(err)
			}
			got, err := c.Continue(head.Level, head.Value)
			if err != nil {
				t.Fatalf("Continue() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Continue() = %q, want %q", got, tt.want)
			}
			next, err := c.Peek()
			if tt.wantNext == "" {
				if !c.Done() {
					t.Errorf("cursor not exhausted, next = %+v", next)
				}
				return
			}
			if err != nil || next.Tag != tt.wantNext {
				t.Errorf("next = %+v, %v; want tag %s", next, err, tt.wantNext)
			}
		})
	}
}

func TestContinueMalformed(t *testing.T) {
	c := New("1 NOTE a\nZ CONC b\n")
	head, _ := c.Consume()
	if _, err := c.Continue(head.Level, head.Value); err == nil {
		t.Error("Continue() over malformed line returned nil error")
	}
}
