package profile

import "testing"

func TestDefaultGreeting(t *testing.T) {
	p := Default()
	if got, want := p.Greeting(), "Hello, Sondos!"; got != want {
		t.Fatalf("Greeting() = %q, want %q", got, want)
	}
	if p.Designation != "Field Worker" {
		t.Fatalf("Designation = %q, want Field Worker", p.Designation)
	}
}

func TestGreetingWithoutName(t *testing.T) {
	if got := (Profile{}).Greeting(); got != "Hello!" {
		t.Fatalf("Greeting() = %q, want %q", got, "Hello!")
	}
}
