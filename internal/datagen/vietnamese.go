//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"fmt"
)

// Gender labels as stored in the dataset.
const (
	GenderMale   = "Nam"
	GenderFemale = "Nữ"
)

var genders = []string{GenderMale, GenderFemale}

var viSurnames = []string{
	"Nguyễn", "Trần", "Lê", "Phạm", "Hoàng", "Huỳnh", "Phan", "Vũ", "Võ",
	"Đặng", "Bùi", "Đỗ", "Hồ", "Ngô", "Dương", "Lý",
}

// Surnames are weighted the way they occur in the population.
var viSurnameWeights = []int{38, 11, 10, 7, 5, 5, 4, 4, 4, 2, 2, 2, 2, 1, 1, 1}

var viMiddleMale = []string{"Văn", "Đức", "Minh", "Quốc", "Hữu", "Thành", "Gia", "Anh"}
var viMiddleFemale = []string{"Thị", "Ngọc", "Thu", "Thanh", "Minh", "Kim", "Phương", "Bảo"}

var viGivenMale = []string{
	"An", "Bảo", "Cường", "Dũng", "Duy", "Hải", "Hiếu", "Hoàng", "Hùng", "Huy",
	"Khang", "Khoa", "Long", "Minh", "Nam", "Nhân", "Phúc", "Quân", "Sơn",
	"Tài", "Thắng", "Thịnh", "Tuấn", "Việt", "Vinh",
}

var viGivenFemale = []string{
	"Anh", "Châu", "Chi", "Dung", "Giang", "Hà", "Hạnh", "Hằng", "Hoa", "Hương",
	"Lan", "Linh", "Mai", "My", "Ngân", "Nhung", "Oanh", "Phương", "Quỳnh",
	"Thảo", "Trang", "Trinh", "Uyên", "Vân", "Yến",
}

var viStreets = []string{
	"Lê Lợi", "Trần Hưng Đạo", "Nguyễn Huệ", "Hai Bà Trưng", "Lý Thường Kiệt",
	"Điện Biên Phủ", "Nguyễn Trãi", "Cách Mạng Tháng Tám", "Võ Văn Tần",
	"Phan Đình Phùng", "Quang Trung", "Nguyễn Văn Cừ", "Lê Duẩn", "Hùng Vương",
	"Bà Triệu", "Pasteur", "Nguyễn Thị Minh Khai", "Trường Chinh",
}

var viMobilePrefixes = []string{"032", "033", "034", "035", "038", "070", "077", "079", "086", "090", "091", "093", "094", "096", "097", "098"}

// Gender returns one of the two gender labels.
func (f *Faker) Gender() string {
	return Choose(f, genders)
}

// GivenName returns a Vietnamese given name for the gender.
func (f *Faker) GivenName(gender string) string {
	if gender == GenderFemale {
		return Choose(f, viGivenFemale)
	}
	return Choose(f, viGivenMale)
}

// FullName returns a Vietnamese full name (surname, middle, given).
func (f *Faker) FullName(gender string) string {
	middle := viMiddleMale
	if gender == GenderFemale {
		middle = viMiddleFemale
	}
	return fmt.Sprintf("%s %s %s",
		ChooseWeighted(f, viSurnames, viSurnameWeights),
		Choose(f, middle),
		f.GivenName(gender))
}

// Phone returns a ten digit Vietnamese mobile number.
func (f *Faker) Phone() string {
	return Choose(f, viMobilePrefixes) + f.Digits(7)
}

// StreetAddress returns a house number and street.
func (f *Faker) StreetAddress() string {
	return fmt.Sprintf("%d %s", f.Int(1, 450), Choose(f, viStreets))
}
