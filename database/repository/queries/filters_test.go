package queries

import "testing"

func TestFeaturedFlagIsCaseInsensitiveTrueOnly(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "True"} {
		if !(ProjectFilters{Featured: v}).OnlyFeatured() || !(WriteUpFilters{Featured: v}).OnlyFeatured() {
			t.Fatalf("%q should enable the featured filter", v)
		}
	}

	for _, v := range []string{"", "false", "1", "yes", "tru"} {
		if (ProjectFilters{Featured: v}).OnlyFeatured() {
			t.Fatalf("%q should be ignored", v)
		}
	}
}

func TestWriteUpFiltersSanitise(t *testing.T) {
	f := WriteUpFilters{Category: "  web-exploitation ", Platform: " hackthebox", Difficulty: "easy  "}

	if f.GetCategory() != "web-exploitation" || f.GetPlatform() != "hackthebox" || f.GetDifficulty() != "easy" {
		t.Fatalf("unexpected sanitised values %+v", f)
	}

	if (ToolFilters{Category: " recon "}).GetCategory() != "recon" {
		t.Fatalf("unexpected tool category")
	}
}
