//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package loader

import (
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pgEdge/pgedge-retailgen/internal/retail"
	"github.com/pgEdge/pgedge-retailgen/internal/sink"
)

func TestReadOrdersCSV(t *testing.T) {
	in := "\ufeffid,date_id,customer_id,employee_id,store_id,channel\n" +
		"1,20240105,CUST-0001,EMP-0001,STO-001,Offline\n" +
		"2,20240106,,,ONL-SHOPEE,Online\n"

	orders, err := ReadOrdersCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadOrdersCSV failed: %v", err)
	}
	want := []retail.Order{
		{DateID: 20240105, CustomerID: "CUST-0001"},
		{DateID: 20240106},
	}
	if !reflect.DeepEqual(orders, want) {
		t.Errorf("Expected %+v, got %+v", want, orders)
	}
}

func TestReadOrdersCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"missing column", "id,date_id\n1,20240101\n"},
		{"bad date", "date_id,customer_id\nsoon,CUST-0001\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadOrdersCSV(strings.NewReader(tt.in)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestSummarizeActive(t *testing.T) {
	sum := SummarizeActive(map[int]int{202402: 12, 202401: 15, 202403: 9})
	if sum.Min != 9 || sum.Max != 15 {
		t.Errorf("Expected range 9-15, got %d-%d", sum.Min, sum.Max)
	}
	if len(sum.Months) != 3 || sum.Months[0].YearMonth != 202401 || sum.Months[2].YearMonth != 202403 {
		t.Errorf("Expected months in order, got %+v", sum.Months)
	}

	empty := SummarizeActive(nil)
	if empty.Min != 0 || empty.Max != 0 || len(empty.Months) != 0 {
		t.Errorf("Expected empty summary, got %+v", empty)
	}
}

func TestVerifyMonthlyActive(t *testing.T) {
	opts := testOptions()
	opts.CSVDir = t.TempDir()
	res, err := Run(context.Background(), sink.NewMemory(), opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	sum, err := VerifyMonthlyActive(filepath.Join(opts.CSVDir, "orders.csv"))
	if err != nil {
		t.Fatalf("VerifyMonthlyActive failed: %v", err)
	}
	want := SummarizeActive(retail.MonthlyActiveCustomers(res.Dataset.Orders))
	if !reflect.DeepEqual(sum, want) {
		t.Errorf("Expected %+v, got %+v", want, sum)
	}
	if sum.Max > opts.Params.MonthlyActiveMax {
		t.Errorf("Expected at most %d active customers, got %d", opts.Params.MonthlyActiveMax, sum.Max)
	}

	if _, err := VerifyMonthlyActive(filepath.Join(opts.CSVDir, "nope.csv")); err == nil {
		t.Error("Expected error for missing file")
	}
}
