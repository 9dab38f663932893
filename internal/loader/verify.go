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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/pgEdge/pgedge-retailgen/internal/export"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
)

// MonthlyActive is the distinct customer count of one month.
type MonthlyActive struct {
	YearMonth int
	Customers int
}

// ActiveSummary is the result of checking an orders export.
type ActiveSummary struct {
	Months []MonthlyActive
	Min    int
	Max    int
}

// ReadOrdersCSV reads order headers from an orders CSV export. Only the
// date_id and customer_id columns are used.
func ReadOrdersCSV(r io.Reader) ([]retail.Order, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], export.BOM)
	}
	dateCol := slices.Index(header, "date_id")
	custCol := slices.Index(header, "customer_id")
	if dateCol < 0 || custCol < 0 {
		return nil, errors.New("orders file needs date_id and customer_id columns")
	}

	var orders []retail.Order
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		dateID, err := strconv.Atoi(rec[dateCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date_id %q", line, rec[dateCol])
		}
		orders = append(orders, retail.Order{DateID: dateID, CustomerID: rec[custCol]})
	}
	return orders, nil
}

// VerifyMonthlyActive summarizes distinct customers per month of an
// orders CSV export.
func VerifyMonthlyActive(path string) (ActiveSummary, error) {
	var sum ActiveSummary

	f, err := os.Open(path)
	if err != nil {
		return sum, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	orders, err := ReadOrdersCSV(f)
	if err != nil {
		return sum, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return SummarizeActive(retail.MonthlyActiveCustomers(orders)), nil
}

// SummarizeActive orders monthly counts and finds their range.
func SummarizeActive(counts map[int]int) ActiveSummary {
	var sum ActiveSummary
	for ym, n := range counts {
		sum.Months = append(sum.Months, MonthlyActive{YearMonth: ym, Customers: n})
	}
	sort.Slice(sum.Months, func(i, j int) bool {
		return sum.Months[i].YearMonth < sum.Months[j].YearMonth
	})
	for i, m := range sum.Months {
		if i == 0 || m.Customers < sum.Min {
			sum.Min = m.Customers
		}
		if m.Customers > sum.Max {
			sum.Max = m.Customers
		}
	}
	return sum
}
