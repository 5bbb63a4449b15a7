package docs

import (
	"reflect"
	"strings"
	"testing"
)

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(\"readme\") returned an unexpected error: %v", err)
	}
	if !strings.Contains(content, "shoply") {
		t.Errorf("readme does not mention shoply:\n%s", content)
	}

	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic(\"no-such-topic\") expected an error, got none")
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() returned an unexpected error: %v", err)
	}
	want := []string{"dashboard", "export"}
	if !reflect.DeepEqual(topics, want) {
		t.Errorf("GetAllTopics() = %v, want %v", topics, want)
	}
}

// Every topic listed in the readme must load, and every topic file must be
// listed in the readme, so the index stays in sync with the content.
func TestReadmeListsAllTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatal(err)
	}
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range topics {
		if !strings.Contains(readme, "`"+topic+"`") {
			t.Errorf("readme does not list topic %q", topic)
		}
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("topic %q does not load: %v", topic, err)
		}
	}
}

func TestGetTopics_Star(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(\"*\") returned an unexpected error: %v", err)
	}
	for _, want := range []string{"dashboard", "CSV export"} {
		if !strings.Contains(all, want) {
			t.Errorf("GetTopics(\"*\") misses %q", want)
		}
	}
}
