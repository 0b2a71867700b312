package directory

import "testing"

var testAllowed = map[string]bool{"email": true, "user_id": true}

func TestWhereClause_Empty(t *testing.T) {
	clause, args, err := WhereClause(nil, testAllowed)
	if err != nil {
		t.Fatalf("WhereClause: %v", err)
	}
	if clause != "" || len(args) != 0 {
		t.Errorf("clause = %q, args = %v, want empty", clause, args)
	}
}

func TestWhereClause_SingleFilter(t *testing.T) {
	clause, args, err := WhereClause(Filters{"email": "foo@bar.com"}, testAllowed)
	if err != nil {
		t.Fatalf("WhereClause: %v", err)
	}
	if clause != "WHERE email = $1" {
		t.Errorf("clause = %q", clause)
	}
	if len(args) != 1 || args[0] != "foo@bar.com" {
		t.Errorf("args = %v", args)
	}
}

func TestWhereClause_MultipleFiltersDeterministic(t *testing.T) {
	f := Filters{"user_id": "u1", "email": "foo@bar.com"}
	for i := 0; i < 10; i++ {
		clause, args, err := WhereClause(f, testAllowed)
		if err != nil {
			t.Fatalf("WhereClause: %v", err)
		}
		if clause != "WHERE email = $1 AND user_id = $2" {
			t.Fatalf("clause = %q", clause)
		}
		if len(args) != 2 || args[0] != "foo@bar.com" || args[1] != "u1" {
			t.Fatalf("args = %v", args)
		}
	}
}

func TestWhereClause_UnknownColumnRejected(t *testing.T) {
	_, _, err := WhereClause(Filters{"password": "x"}, testAllowed)
	if err == nil {
		t.Fatal("expected error for unknown column")
	}
}
