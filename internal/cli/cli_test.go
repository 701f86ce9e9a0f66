package cli

import (
	"testing"
)

func TestDatasetRegistry(t *testing.T) {
	want := []string{
		"pbp", "weekly", "seasonal", "rosters", "weekly-rosters", "players",
		"schedules", "officials", "win-totals", "sc-lines", "draft-picks",
		"draft-values", "combine", "teams", "ids", "ngs", "qbr",
		"seasonal-pfr", "weekly-pfr", "snap-counts", "depth-charts",
		"injuries", "contracts", "ftn",
	}

	if len(datasets) != len(want) {
		t.Errorf("expected %d datasets, got %d: %v", len(want), len(datasets), datasetNames())
	}
	for _, name := range want {
		if _, ok := datasets[name]; !ok {
			t.Errorf("missing dataset %q", name)
		}
	}
}

func TestDatasetNamesSorted(t *testing.T) {
	names := datasetNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestParseInts(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single", "2022", []int{2022}, false},
		{"multiple", "2022,2023", []int{2022, 2023}, false},
		{"spaces", " 2022 , 2023 ", []int{2022, 2023}, false},
		{"trailing comma", "2022,", []int{2022}, false},
		{"garbage", "twenty", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInts(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseInts: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList("a, b,,c ")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("expected [a b c], got %v", got)
	}
	if splitList("") != nil {
		t.Error("expected nil for empty input")
	}
}

func TestParseParamsParticipationBypassesCache(t *testing.T) {
	defer func(participation, noCache bool) {
		flagParticipation = participation
		flagNoCache = noCache
	}(flagParticipation, flagNoCache)

	flagNoCache = false
	flagParticipation = false
	p, err := parseParams()
	if err != nil {
		t.Fatalf("parseParams: %v", err)
	}
	if !p.UseCache {
		t.Error("expected cache on by default")
	}

	flagParticipation = true
	p, err = parseParams()
	if err != nil {
		t.Fatalf("parseParams: %v", err)
	}
	if !p.Participation {
		t.Fatal("expected participation requested")
	}
	if p.UseCache {
		t.Error("expected participation request to bypass the cache")
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"import", "columns", "cache", "clean", "assets"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}
