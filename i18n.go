package main

import "fmt"

// Language codes supported by the storefront.
const (
	LangKa = "ka"
	LangEn = "en"
	LangRu = "ru"
)

type categoryNames struct {
	ID     Category
	NameKa string
	NameEn string
	NameRu string
}

var categoryTable = []categoryNames{
	{CategoryAction, "ექშენი", "Action", "Экшен"},
	{CategoryAdventure, "სათავგადასავლო", "Adventure", "Приключения"},
	{CategoryRPG, "RPG", "RPG", "RPG"},
	{CategoryStrategy, "სტრატეგია", "Strategy", "Стратегия"},
	{CategorySports, "სპორტი", "Sports", "Спорт"},
	{CategorySimulation, "სიმულატორი", "Simulation", "Симулятор"},
}

// ProductTitle returns the product title in the given language,
// falling back to English.
func ProductTitle(p Product, lang string) string {
	switch lang {
	case LangKa:
		return p.TitleKa
	case LangRu:
		return p.TitleRu
	default:
		return p.Title
	}
}

// ProductDescription returns the localized description, falling back
// to English.
func ProductDescription(p Product, lang string) string {
	switch lang {
	case LangKa:
		return p.DescriptionKa
	case LangRu:
		return p.DescriptionRu
	default:
		return p.Description
	}
}

// CategoryName returns the localized display name for a category id,
// or the raw id when unknown.
func CategoryName(id Category, lang string) string {
	for _, c := range categoryTable {
		if c.ID != id {
			continue
		}
		switch lang {
		case LangKa:
			return c.NameKa
		case LangRu:
			return c.NameRu
		default:
			return c.NameEn
		}
	}
	return string(id)
}

// FormatPrice renders a price with the lari sign, e.g. "159.99 ₾".
func FormatPrice(price float64) string {
	return fmt.Sprintf("%.2f ₾", price)
}
