package repository

import (
	"strings"
	"testing"

	"github.com/devfolio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// contactFilter — WHERE clause construction for List
// ---------------------------------------------------------------------------

func TestContactFilter_NoFiltersYieldsEmptyClause(t *testing.T) {
	where, args := contactFilter(model.ContactListOptions{})

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestContactFilter_StatusOnly(t *testing.T) {
	where, args := contactFilter(model.ContactListOptions{Status: "read"})

	if where != "WHERE status = $1" {
		t.Errorf("unexpected where clause %q", where)
	}
	if len(args) != 1 || args[0] != "read" {
		t.Errorf("unexpected args %v", args)
	}
}

func TestContactFilter_SearchORsAllFourFieldsWithOnePlaceholder(t *testing.T) {
	where, args := contactFilter(model.ContactListOptions{Search: "alice"})

	want := "WHERE (name ILIKE $1 OR email ILIKE $1 OR subject ILIKE $1 OR message ILIKE $1)"
	if where != want {
		t.Errorf("unexpected where clause %q", where)
	}
	if len(args) != 1 || args[0] != "%alice%" {
		t.Errorf("expected a single shared substring arg, got %v", args)
	}
}

func TestContactFilter_StatusAndSearchCombineWithAND(t *testing.T) {
	where, args := contactFilter(model.ContactListOptions{Status: "unread", Search: "bug"})

	if !strings.HasPrefix(where, "WHERE status = $1 AND (") {
		t.Errorf("expected status condition first, got %q", where)
	}
	if !strings.Contains(where, "message ILIKE $2)") {
		t.Errorf("expected search placeholder $2, got %q", where)
	}
	if len(args) != 2 || args[0] != "unread" || args[1] != "%bug%" {
		t.Errorf("unexpected args %v", args)
	}
}

func TestContactFilter_EscapesLikeMetacharacters(t *testing.T) {
	cases := []struct {
		search string
		want   string
	}{
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`c:\tmp`, `%c:\\tmp%`},
		{"plain", "%plain%"},
	}
	for _, tc := range cases {
		_, args := contactFilter(model.ContactListOptions{Search: tc.search})
		if len(args) != 1 || args[0] != tc.want {
			t.Errorf("search %q: expected arg %q, got %v", tc.search, tc.want, args)
		}
	}
}

func TestContactFilter_TrimsWhitespaceOnlyInputs(t *testing.T) {
	where, args := contactFilter(model.ContactListOptions{Status: "  ", Search: " \t"})

	if where != "" {
		t.Errorf("expected blank filters ignored, got %q", where)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}
