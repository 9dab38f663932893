//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package schema

import (
	"strings"
	"testing"
)

func TestDDLCreatesEveryTable(t *testing.T) {
	for _, table := range LoadOrder() {
		if !strings.Contains(DDL, "CREATE TABLE IF NOT EXISTS "+table.Name+" (") {
			t.Errorf("DDL does not create table %s", table.Name)
		}
		for _, col := range table.Columns {
			if !strings.Contains(DDL, "    "+col+" ") {
				t.Errorf("DDL has no column %s for table %s", col, table.Name)
			}
		}
	}
}

func TestLoadOrderRespectsReferences(t *testing.T) {
	pos := make(map[string]int)
	for i, table := range LoadOrder() {
		pos[table.Name] = i
	}

	deps := map[string][]string{
		CustomerChildren:  {Customers},
		ProductDailyCosts: {Products, Dates},
		Employees:         {Stores},
		Orders:            {Dates, Customers, Employees, Stores},
		OrderItems:        {Orders, Products, Promotions},
		KPITargetMonthly:  {Stores},
	}
	for table, parents := range deps {
		for _, parent := range parents {
			if pos[parent] >= pos[table] {
				t.Errorf("Expected %s to load before %s", parent, table)
			}
		}
	}
}

func TestTruncateOrderReversesLoadOrder(t *testing.T) {
	load := LoadOrder()
	trunc := TruncateOrder()
	if len(load) != len(trunc) {
		t.Fatalf("Expected %d tables, got %d", len(load), len(trunc))
	}
	if trunc[0] != KPITargetMonthly {
		t.Errorf("Expected %s first, got %s", KPITargetMonthly, trunc[0])
	}
	if trunc[len(trunc)-1] != Dates {
		t.Errorf("Expected %s last, got %s", Dates, trunc[len(trunc)-1])
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		found bool
	}{
		{"orders", true},
		{"KPI_Target_Monthly", true},
		{"Order_Items", true},
		{"missing", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Lookup(tt.name)
			if ok != tt.found {
				t.Errorf("Expected found=%v, got %v", tt.found, ok)
			}
		})
	}
}

func TestStatements(t *testing.T) {
	stmts := Statements()
	creates := 0
	for _, s := range stmts {
		if strings.HasPrefix(strings.TrimSpace(s), "CREATE TABLE") {
			creates++
		}
		if strings.Contains(s, "--") {
			t.Errorf("Statement still contains a comment: %q", s)
		}
	}
	if creates != len(LoadOrder()) {
		t.Errorf("Expected %d CREATE TABLE statements, got %d", len(LoadOrder()), creates)
	}
}
