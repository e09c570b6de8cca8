package ingest

import (
	"context"
	"fmt"

	"github.com/goliatone/go-mhdb/pkg/module"
	"github.com/goliatone/go-mhdb/pkg/statement"
	"github.com/goliatone/go-mhdb/pkg/workbook"
)

// disordersIngester maps the disorders workbook: the disorder taxonomy with
// its diagnostic criteria, specifiers, severities, and signs and symptoms.
type disordersIngester struct{}

var _ Ingester = disordersIngester{}

func (disordersIngester) Module() module.Name { return module.Disorders }

// disorderSheets are the domain sheets of the disorders workbook beyond the
// Classes/Properties scaffolding.
type disorderSheets struct {
	disorders     *workbook.Sheet
	signsSymptoms *workbook.Sheet
	examples      *workbook.Sheet
	severities    *workbook.Sheet
	specifiers    *workbook.Sheet
	criteria      *workbook.Sheet
	categories    [4]*workbook.Sheet // category, sub, subsub, subsubsub
	references    *workbook.Sheet
}

func (disordersIngester) Ingest(ctx context.Context, books workbook.Set, m *statement.Map) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ingestScaffolding(module.Disorders, books.Primary, m); err != nil {
		return err
	}

	var sheets disorderSheets
	var err error
	load := func(dst **workbook.Sheet, name string) {
		if err != nil {
			return
		}
		*dst, err = requireSheet(module.Disorders, books.Primary, name)
	}
	load(&sheets.disorders, "disorders")
	load(&sheets.signsSymptoms, "signs_symptoms")
	load(&sheets.examples, "examples_signs_symptoms")
	load(&sheets.severities, "severities")
	load(&sheets.specifiers, "diagnostic_specifiers")
	load(&sheets.criteria, "diagnostic_criteria")
	load(&sheets.categories[0], "disorder_categories")
	load(&sheets.categories[1], "disorder_subcategories")
	load(&sheets.categories[2], "disorder_subsubcategories")
	load(&sheets.categories[3], "disorder_subsubsubcategories")
	load(&sheets.references, "references")
	if err != nil {
		return err
	}

	ingestSignsSymptoms(sheets, m)
	ingestExamples(sheets, m)
	ingestSeverities(sheets.severities, m)
	ingestNamedClassSheet(sheets.specifiers, "diagnostic_specifier", ":DiagnosticSpecifier", m)
	ingestNamedClassSheet(sheets.criteria, "diagnostic_criterion", ":DiagnosticCriterion", m)
	ingestDisorders(sheets, m)
	ingestDisorderCategories(sheets, m)

	return nil
}

func ingestSignsSymptoms(sheets disorderSheets, m *statement.Map) {
	for row := 0; row < sheets.signsSymptoms.Len(); row++ {
		symptom := sheets.signsSymptoms.Cell(row, "sign_symptom")
		if statement.IsEmptyValue(symptom) {
			continue
		}
		iri := statement.CheckPascalIRI(symptom)
		m.Add(iri, "rdfs:label", statement.LanguageString(symptom, ""))

		if index, ok := parseIndex(sheets.signsSymptoms.Cell(row, "index_reference")); ok {
			if source, found := valueByIndex(sheets.references, index, "title"); found {
				m.Add(iri, ":isReferencedBy", statement.CheckIRI(source))
			}
		}
		// 1 = female, 2 = male
		switch gender, _ := parseIndex(sheets.signsSymptoms.Cell(row, "index_gender")); gender {
		case 1:
			m.Add(iri, "schema:epidemiology", ":Female")
		case 2:
			m.Add(iri, "schema:epidemiology", ":Male")
		}
	}
}

func ingestExamples(sheets disorderSheets, m *statement.Map) {
	for row := 0; row < sheets.examples.Len(); row++ {
		example := sheets.examples.Cell(row, "example_sign_symptom")
		if statement.IsEmptyValue(example) {
			continue
		}
		iri := statement.CheckIRI(example)
		m.Add(iri, "rdfs:label", statement.LanguageString(example, ""))

		for _, index := range indexList(sheets.examples.Cell(row, "indices_sign_symptom")) {
			if symptom, ok := valueByIndex(sheets.signsSymptoms, index, "sign_symptom"); ok {
				m.Add(iri, ":isExampleOf", statement.CheckPascalIRI(symptom))
			}
		}
	}
}

func ingestSeverities(severities *workbook.Sheet, m *statement.Map) {
	for row := 0; row < severities.Len(); row++ {
		severity := severities.Cell(row, "severity")
		if statement.IsEmptyValue(severity) {
			continue
		}
		iri := statement.CheckPascalIRI(severity)
		m.Add(iri, "rdfs:label", statement.LanguageString(severity, ""))

		if def := severities.Cell(row, "definition"); !statement.IsEmptyValue(def) {
			m.Add(iri, "rdfs:comment", statement.LanguageString(sanitize(def), ""))
		}
		for _, eq := range splitList(severities.Cell(row, "equivalentClasses")) {
			m.Add(iri, "rdfs:equivalentClass", eq)
		}
		if sub := severities.Cell(row, "subClassOf"); !statement.IsEmptyValue(sub) {
			m.Add(iri, "rdfs:subClassOf", statement.CheckIRI(sub))
		} else {
			m.Add(iri, "rdfs:subClassOf", ":DisorderSeverity")
		}
	}
}

// ingestNamedClassSheet covers the simple class sheets whose rows carry a
// name column, equivalent classes, and a fixed superclass.
func ingestNamedClassSheet(sheet *workbook.Sheet, column, superClass string, m *statement.Map) {
	for row := 0; row < sheet.Len(); row++ {
		name := sheet.Cell(row, column)
		if statement.IsEmptyValue(name) {
			continue
		}
		iri := statement.CheckPascalIRI(name)
		m.Add(iri, "rdfs:label", statement.LanguageString(name, ""))
		for _, eq := range splitList(sheet.Cell(row, "equivalentClasses")) {
			m.Add(iri, "rdfs:equivalentClass", eq)
		}
		m.Add(iri, "rdfs:subClassOf", superClass)
	}
}

// categoryColumns index the four category sheets by depth.
var categoryColumns = [4]string{
	"disorder_category",
	"disorder_subcategory",
	"disorder_subsubcategory",
	"disorder_subsubsubcategory",
}

var categoryIndexColumns = [4]string{
	"index_disorder_category",
	"index_disorder_subcategory",
	"index_disorder_subsubcategory",
	"index_disorder_subsubsubcategory",
}

func ingestDisorders(sheets disorderSheets, m *statement.Map) {
	for row := 0; row < sheets.disorders.Len(); row++ {
		disorder := sheets.disorders.Cell(row, "disorder")
		if statement.IsEmptyValue(disorder) {
			continue
		}

		// the display label and the identifier both accumulate diagnostic
		// qualifiers so that distinct presentations of one disorder stay
		// distinct subjects
		label := disorder
		iriLabel := disorder

		type pair struct{ p, o string }
		var predicates []pair

		for _, eq := range splitList(sheets.disorders.Cell(row, "equivalentClasses")) {
			predicates = append(predicates, pair{"rdfs:equivalentClass", eq})
		}
		if icd9 := sheets.disorders.Cell(row, "ICD9CM"); !statement.IsEmptyValue(icd9) {
			predicates = append(predicates, pair{":hasICD9Code", "ICD9CM:" + icd9})
			label += fmt.Sprintf("; ICD9CM:%s", icd9)
			iriLabel += fmt.Sprintf(" ICD9 %s", icd9)
		}
		if icd10 := sheets.disorders.Cell(row, "ICD10CM"); !statement.IsEmptyValue(icd10) {
			predicates = append(predicates, pair{":hasICD10Code", "ICD10CM:" + icd10})
			label += fmt.Sprintf("; ICD10CM:%s", icd10)
			iriLabel += fmt.Sprintf(" ICD10 %s", icd10)
		}
		if note := sheets.disorders.Cell(row, "note"); !statement.IsEmptyValue(note) {
			predicates = append(predicates, pair{":hasNote", statement.LanguageString(sanitize(note), "")})
		}
		if index, ok := parseIndex(sheets.disorders.Cell(row, "index_diagnostic_specifier")); ok {
			if specifier, found := valueByIndex(sheets.specifiers, index, "diagnostic_specifier"); found {
				predicates = append(predicates, pair{":hasDiagnosticSpecifier", statement.CheckPascalIRI(specifier)})
				label += fmt.Sprintf("; specifier: %s", specifier)
				iriLabel += fmt.Sprintf(" specifier %s", specifier)
			}
		}

		criterion := func(indexColumn, predicate, labelPrefix string, first bool) {
			index, ok := parseIndex(sheets.disorders.Cell(row, indexColumn))
			if !ok {
				return
			}
			value, found := valueByIndex(sheets.criteria, index, "diagnostic_criterion")
			if !found {
				return
			}
			predicates = append(predicates, pair{predicate, statement.CheckPascalIRI(value)})
			if first {
				label += fmt.Sprintf("; %s: %s", labelPrefix, value)
				iriLabel += fmt.Sprintf(" %s %s", labelPrefix, value)
			} else {
				label += fmt.Sprintf(", %s", value)
				iriLabel += fmt.Sprintf(" %s", value)
			}
		}
		criterion("index_diagnostic_inclusion_criterion", ":hasInclusionCriterion", "inclusion", true)
		criterion("index_diagnostic_inclusion_criterion2", ":hasInclusionCriterion", "inclusion", false)
		criterion("index_diagnostic_exclusion_criterion", ":hasExclusionCriterion", "exclusion", true)
		criterion("index_diagnostic_exclusion_criterion2", ":hasExclusionCriterion", "exclusion", false)

		if index, ok := parseIndex(sheets.disorders.Cell(row, "index_severity")); ok {
			if severity, found := valueByIndex(sheets.severities, index, "severity"); found {
				predicates = append(predicates, pair{":hasSeverity", statement.CheckPascalIRI(severity)})
				label += fmt.Sprintf("; severity: %s", severity)
				iriLabel += fmt.Sprintf(" severity %s", severity)
			}
		}

		// the deepest category present becomes the superclass; shallower
		// levels chain between the category subjects themselves
		if parent, ok := deepestCategory(sheets, row, m); ok {
			predicates = append(predicates, pair{"rdfs:subClassOf", parent})
		} else {
			predicates = append(predicates, pair{"rdfs:subClassOf", ":Disorder"})
		}

		iri := statement.CheckPascalIRI(iriLabel)
		m.Add(iri, "rdfs:label", statement.LanguageString(label, ""))
		for _, pr := range predicates {
			m.Add(iri, pr.p, pr.o)
		}
	}
}

// deepestCategory resolves the deepest category index on a disorder row,
// emits the subClassOf chain linking it up through its ancestors, and returns
// the deepest category IRI.
func deepestCategory(sheets disorderSheets, row int, m *statement.Map) (string, bool) {
	var chain []string
	for depth := len(categoryColumns) - 1; depth >= 0; depth-- {
		if len(chain) == 0 {
			index, ok := parseIndex(sheets.disorders.Cell(row, categoryIndexColumns[depth]))
			if !ok {
				continue
			}
			value, found := valueByIndex(sheets.categories[depth], index, categoryColumns[depth])
			if !found {
				continue
			}
			chain = append(chain, statement.CheckPascalIRI(value))
			continue
		}
		index, ok := parseIndex(sheets.disorders.Cell(row, categoryIndexColumns[depth]))
		if !ok {
			continue
		}
		value, found := valueByIndex(sheets.categories[depth], index, categoryColumns[depth])
		if !found {
			continue
		}
		parent := statement.CheckPascalIRI(value)
		m.Add(chain[len(chain)-1], "rdfs:subClassOf", parent)
		chain = append(chain, parent)
	}
	if len(chain) == 0 {
		return "", false
	}
	return chain[0], true
}

func ingestDisorderCategories(sheets disorderSheets, m *statement.Map) {
	for depth, sheet := range sheets.categories {
		for row := 0; row < sheet.Len(); row++ {
			category := sheet.Cell(row, categoryColumns[depth])
			if statement.IsEmptyValue(category) {
				continue
			}
			iri := statement.CheckPascalIRI(category)
			m.Add(iri, "rdfs:label", statement.LanguageString(category, ""))
			for _, eq := range splitList(sheet.Cell(row, "equivalentClasses")) {
				m.Add(iri, "rdfs:equivalentClass", eq)
			}
			if icd9 := sheet.Cell(row, "ICD9CM"); !statement.IsEmptyValue(icd9) {
				m.Add(iri, ":hasICD9Code", "ICD9CM:"+icd9)
			}
			if depth == 0 {
				m.Add(iri, "rdfs:subClassOf", ":Disorder")
			}
		}
	}
}
