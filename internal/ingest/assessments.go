package ingest

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-mhdb/pkg/module"
	"github.com/goliatone/go-mhdb/pkg/statement"
	"github.com/goliatone/go-mhdb/pkg/workbook"
)

// assessmentsIngester maps the assessments workbook: questionnaires, their
// questions and response options, response types, and behavioral tasks. It
// cross-references the resources workbook for people, licenses, and
// languages, and the disorders workbook for subject matter.
type assessmentsIngester struct{}

var _ Ingester = assessmentsIngester{}

func (assessmentsIngester) Module() module.Name { return module.Assessments }

type assessmentSheets struct {
	questionnaires *workbook.Sheet
	questions      *workbook.Sheet
	responseTypes  *workbook.Sheet
	tasks          *workbook.Sheet
	references     *workbook.Sheet

	people    *workbook.Sheet
	licenses  *workbook.Sheet
	languages *workbook.Sheet
	disorders *workbook.Sheet
}

func (assessmentsIngester) Ingest(ctx context.Context, books workbook.Set, m *statement.Map) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ingestScaffolding(module.Assessments, books.Primary, m); err != nil {
		return err
	}

	var sheets assessmentSheets
	var err error
	load := func(dst **workbook.Sheet, name string) {
		if err != nil {
			return
		}
		*dst, err = requireSheet(module.Assessments, books.Primary, name)
	}
	load(&sheets.questionnaires, "questionnaires")
	load(&sheets.questions, "questions")
	load(&sheets.responseTypes, "response_types")
	load(&sheets.tasks, "tasks")
	load(&sheets.references, "references")
	if err != nil {
		return err
	}

	if wb, ok := books.CrossRef(module.Resources); ok {
		sheets.people, _ = wb.Sheet("people")
		sheets.licenses, _ = wb.Sheet("licenses")
		sheets.languages, _ = wb.Sheet("languages")
	}
	if wb, ok := books.CrossRef(module.Disorders); ok {
		sheets.disorders, _ = wb.Sheet("disorders")
	}

	ingestQuestionnaires(sheets, m)
	ingestQuestions(sheets, m)
	ingestResponseTypes(sheets.responseTypes, m)
	ingestTasks(sheets.tasks, m)

	return nil
}

func ingestQuestionnaires(sheets assessmentSheets, m *statement.Map) {
	questionnaires := sheets.questionnaires
	for row := 0; row < questionnaires.Len(); row++ {
		title := questionnaires.Cell(row, "title")
		if statement.IsEmptyValue(title) {
			continue
		}
		iri := statement.CheckIRI(title)
		m.Add(iri, "a", ":Questionnaire")
		m.Add(iri, "rdfs:label", statement.LanguageString(title, ""))
		m.Add(iri, ":hasTitle", statement.LanguageString(title, ""))

		if abbr := questionnaires.Cell(row, "abbreviation"); !statement.IsEmptyValue(abbr) {
			m.Add(iri, ":hasAbbreviation", statement.LanguageString(abbr, ""))
		}
		if desc := questionnaires.Cell(row, "description"); !statement.IsEmptyValue(desc) {
			m.Add(iri, "rdfs:comment", statement.LanguageString(sanitize(desc), ""))
		}
		if link := questionnaires.Cell(row, "link"); !statement.IsEmptyValue(link) {
			m.Add(iri, ":hasWebsite", anyURI(link))
		}
		if authors := questionnaires.Cell(row, "authors"); !statement.IsEmptyValue(authors) {
			m.Add(iri, ":hasAuthorList", statement.LanguageString(authors, ""))
		}
		if year, ok := parseIndex(questionnaires.Cell(row, "year")); ok {
			m.Add(iri, ":hasPublicationYear", fmt.Sprintf(`"%d"^^xsd:gyear`, year))
		}
		for _, index := range indexList(questionnaires.Cell(row, "use_with_assessments")) {
			if other, ok := valueByIndex(questionnaires, index, "title"); ok {
				m.Add(iri, ":useWith", statement.CheckIRI(other))
			}
		}
		if n := questionnaires.Cell(row, "number_of_questions"); !statement.IsEmptyValue(n) {
			m.Add(iri, ":hasNumberOfQuestions", `"`+n+`"^^xsd:nonNegativeInteger`)
		}
		if minutes := questionnaires.Cell(row, "minutes_to_complete"); !statement.IsEmptyValue(minutes) {
			m.Add(iri, ":takesMinutesToComplete", `"`+minutes+`"^^xsd:decimal`)
		}
		if age := questionnaires.Cell(row, "age_min"); !statement.IsEmptyValue(age) {
			m.Add(iri, "schema:requiredMinAge", `"`+age+`"^^xsd:decimal`)
		}
		if age := questionnaires.Cell(row, "age_max"); !statement.IsEmptyValue(age) {
			m.Add(iri, "schema:requiredMaxAge", `"`+age+`"^^xsd:decimal`)
		}
		for _, index := range indexList(questionnaires.Cell(row, "indices_respondent")) {
			if person, ok := valueByIndex(sheets.people, index, "person"); ok {
				m.Add(iri, "schema:audienceType", statement.CheckPascalIRI(person))
			}
		}
		for _, index := range indexList(questionnaires.Cell(row, "indices_disorder")) {
			if disorder, ok := valueByIndex(sheets.disorders, index, "disorder"); ok {
				m.Add(iri, ":isAbout", statement.CheckPascalIRI(disorder))
			}
		}
		if index, ok := parseIndex(questionnaires.Cell(row, "index_license")); ok {
			if license, found := valueByIndex(sheets.licenses, index, "license"); found {
				m.Add(iri, ":hasLicense", statement.CheckPascalIRI(license))
			}
		}
		for _, column := range []string{"index_language", "indices_language_not_in_mhdb"} {
			for _, index := range indexList(questionnaires.Cell(row, column)) {
				if language, ok := valueByIndex(sheets.languages, index, "language"); ok {
					m.Add(iri, ":hasLanguage", statement.CheckPascalIRI(language))
				}
			}
		}
		for _, index := range indexList(questionnaires.Cell(row, "indices_reference")) {
			if source, ok := valueByIndex(sheets.references, index, "title"); ok {
				m.Add(iri, ":isReferencedBy", statement.CheckIRI(source))
			}
		}
	}
}

// quotedOption matches response options written as 1="Never" lists.
var quotedOption = regexp.MustCompile(`[-+]?[0-9]+=".*?"`)

func ingestQuestions(sheets assessmentSheets, m *statement.Map) {
	questions := sheets.questions

	// question numbers restart at 1 for each questionnaire, in row order
	counts := make(map[string]int)

	for row := 0; row < questions.Len(); row++ {
		question := questions.Cell(row, "question")
		if statement.IsEmptyValue(question) {
			continue
		}
		index, ok := parseIndex(questions.Cell(row, "index_questionnaire"))
		if !ok {
			continue
		}
		questionnaire, found := valueByIndex(sheets.questionnaires, index, "title")
		if !found {
			continue
		}
		counts[questionnaire]++

		label := statement.LanguageString(question, "")
		iri := statement.CheckIRI(fmt.Sprintf("%s_Q%d", questionnaire, counts[questionnaire]))
		m.Add(iri, "a", ":Question")
		m.Add(iri, "rdfs:label", label)
		m.Add(iri, ":hasQuestionText", label)
		m.Add(iri, ":isReferencedBy", statement.CheckIRI(questionnaire))

		digitalPreamble := questions.Cell(row, "digital_instructions_preamble")
		digital := questions.Cell(row, "digital_instructions")
		paperPreamble := questions.Cell(row, "paper_instructions_preamble")
		paper := questions.Cell(row, "paper_instructions")

		if !statement.IsEmptyValue(digitalPreamble) {
			preambleIRI := statement.CheckIRI(digitalPreamble)
			m.Add(iri, ":hasInstructionsPreamble", preambleIRI)
			m.Add(preambleIRI, ":hasInstructionsPreambleText", statement.LanguageString(digitalPreamble, ""))
		}
		if !statement.IsEmptyValue(digital) {
			m.Add(iri, ":hasInstructions", statement.LanguageString(digital, ""))
			m.Add(statement.CheckIRI(digital), ":hasInstructionsText", statement.LanguageString(digital, ""))
		}
		if !statement.IsEmptyValue(paperPreamble) && paperPreamble != digitalPreamble {
			preambleIRI := statement.CheckIRI(paperPreamble)
			m.Add(iri, ":hasPaperInstructionsPreamble", preambleIRI)
			m.Add(preambleIRI, ":hasPaperInstructionsPreambleText", statement.LanguageString(paperPreamble, ""))
		}
		if !statement.IsEmptyValue(paper) && paper != digital {
			paperIRI := statement.CheckIRI(paper)
			m.Add(iri, ":hasPaperInstructions", paperIRI)
			m.Add(paperIRI, ":hasPaperInstructionsText", statement.LanguageString(paper, ""))
		}

		ingestResponseOptions(questions.Cell(row, "response_options"), iri, m)

		for _, index := range indexList(questions.Cell(row, "indices_response_type")) {
			if responseType, ok := valueByIndex(sheets.responseTypes, index, "response_type"); ok {
				m.Add(iri, ":hasResponseType", statement.CheckPascalIRI(responseType))
			}
		}
	}
}

// ingestResponseOptions turns a response-options cell like `1=Never, 2=Often`
// or `1="Never" 2="Often"` into an rdf:Seq of response texts.
func ingestResponseOptions(cell, questionIRI string, m *statement.Map) {
	if statement.IsEmptyValue(cell) {
		return
	}
	cleaned := strings.Trim(cell, "-")
	cleaned = strings.ReplaceAll(cleaned, "\n", "")
	optionsIRI := statement.CheckIRI(cleaned)

	var options []string
	if strings.Contains(cleaned, `"`) {
		options = quotedOption.FindAllString(cleaned, -1)
	} else {
		options = strings.Split(cleaned, ",")
	}

	m.Add(questionIRI, ":hasResponseOptions", optionsIRI)
	m.Add(optionsIRI, "a", "rdf:Seq")

	seq := 0
	for _, option := range options {
		parts := strings.SplitN(option, "=", 2)
		if len(parts) < 2 {
			continue
		}
		seq++
		response := strings.TrimSpace(strings.Trim(strings.TrimSpace(parts[1]), `"`))
		if statement.IsEmptyValue(response) {
			continue
		}
		responseIRI := statement.CheckIRI(response)
		m.Add(responseIRI, ":hasResponseOptionText", statement.LanguageString(response, ""))
		m.Add(optionsIRI, fmt.Sprintf("rdf:_%d", seq), responseIRI)
	}
}

func ingestResponseTypes(responseTypes *workbook.Sheet, m *statement.Map) {
	for row := 0; row < responseTypes.Len(); row++ {
		responseType := responseTypes.Cell(row, "response_type")
		if statement.IsEmptyValue(responseType) {
			continue
		}
		iri := statement.CheckPascalIRI(responseType)
		m.Add(iri, "rdfs:subClassOf", ":ResponseType")
		m.Add(iri, "rdfs:label", statement.LanguageString(responseType, ""))
		if def := responseTypes.Cell(row, "definition"); !statement.IsEmptyValue(def) {
			m.Add(iri, "rdfs:comment", statement.LanguageString(sanitize(def), ""))
		}
		for _, eq := range splitList(responseTypes.Cell(row, "equivalentClasses")) {
			m.Add(iri, "rdfs:equivalentClass", eq)
		}
	}
}

func ingestTasks(tasks *workbook.Sheet, m *statement.Map) {
	for row := 0; row < tasks.Len(); row++ {
		name := tasks.Cell(row, "name")
		if statement.IsEmptyValue(name) {
			continue
		}
		iri := statement.CheckPascalIRI(name)
		m.Add(iri, "rdfs:subClassOf", ":Task")
		m.Add(iri, "rdfs:label", statement.LanguageString(name, ""))
		if desc := tasks.Cell(row, "description"); !statement.IsEmptyValue(desc) {
			m.Add(iri, "rdfs:comment", statement.LanguageString(sanitize(desc), ""))
		}
		for _, alias := range splitList(tasks.Cell(row, "aliases")) {
			m.Add(iri, "rdfs:label", statement.LanguageString(alias, ""))
		}
	}
}
