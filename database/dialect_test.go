package database

import "testing"

func TestDialectorFor(t *testing.T) {
	tests := []struct {
		dsn     string
		name    string
		sqlite  bool
		wantErr bool
	}{
		{dsn: "postgres://u:p@localhost:5432/todo", name: "postgres"},
		{dsn: "postgresql://u@localhost/todo?sslmode=disable", name: "postgres"},
		{dsn: "sqlite:///database.db", name: "sqlite", sqlite: true},
		{dsn: "sqlite://", name: "sqlite", sqlite: true},
		{dsn: "file:todo?mode=memory&cache=shared", name: "sqlite", sqlite: true},
		{dsn: "mysql://root@localhost/todo", wantErr: true},
		{dsn: "", wantErr: true},
	}

	for _, tt := range tests {
		d, isSQLite, err := dialectorFor(tt.dsn)
		if tt.wantErr {
			if err == nil {
				t.Errorf("dialectorFor(%q): expected error", tt.dsn)
			}
			continue
		}
		if err != nil {
			t.Errorf("dialectorFor(%q): %v", tt.dsn, err)
			continue
		}
		if d.Name() != tt.name {
			t.Errorf("dialectorFor(%q): expected %s, got %s", tt.dsn, tt.name, d.Name())
		}
		if isSQLite != tt.sqlite {
			t.Errorf("dialectorFor(%q): expected sqlite=%v", tt.dsn, tt.sqlite)
		}
	}
}
