package service

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/types"
)

// RenderPDF lays out a scaled recipe on letter pages and returns the document
// bytes. Failures here are export errors and never affect the on-screen view.
func RenderPDF(recipe *types.ScaledRecipe) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(15, 18, 15)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	pdf.SetFont("Times", "B", 18)
	pdf.MultiCell(0, 9, recipe.DishName, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Times", "", 12)
	meta := fmt.Sprintf("Serves: %d", recipe.Servings)
	if recipe.Cuisine != "" {
		meta += "  |  Cuisine: " + recipe.Cuisine
	}
	if recipe.CookingTime != "" {
		meta += "  |  Cooking Time: " + recipe.CookingTime
	}
	pdf.MultiCell(0, 6, meta, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Times", "B", 14)
	pdf.CellFormat(0, 7, "Ingredients", "", 1, "L", false, 0, "")
	pdf.SetFont("Times", "", 12)
	for _, ing := range recipe.Ingredients {
		pdf.MultiCell(0, 6, "- "+FormatIngredient(ing), "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Times", "B", 14)
	pdf.CellFormat(0, 7, "Steps", "", 1, "L", false, 0, "")
	pdf.SetFont("Times", "", 12)
	for i, step := range recipe.Steps {
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, step), "", "L", false)
		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, types.Exportf("PDF generation failed: %v", err)
	}
	return buf.Bytes(), nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// PDFFilename derives a safe download filename from the dish name.
func PDFFilename(dishName string) string {
	name := strings.TrimSpace(dishName)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	if name == "" {
		name = "recipe"
	}
	return name + ".pdf"
}
