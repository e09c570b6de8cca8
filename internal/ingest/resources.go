package ingest

import (
	"context"

	"github.com/goliatone/go-mhdb/pkg/module"
	"github.com/goliatone/go-mhdb/pkg/statement"
	"github.com/goliatone/go-mhdb/pkg/workbook"
)

// resourcesIngester maps the resources workbook: guides, projects, the groups
// and people behind them, languages, and licenses. It cross-references the
// sensors, disorders, and states workbooks for subject matter.
type resourcesIngester struct{}

var _ Ingester = resourcesIngester{}

func (resourcesIngester) Module() module.Name { return module.Resources }

type resourceSheets struct {
	guideTypes   *workbook.Sheet
	guides       *workbook.Sheet
	projectTypes *workbook.Sheet
	projects     *workbook.Sheet
	groups       *workbook.Sheet
	people       *workbook.Sheet
	languages    *workbook.Sheet
	licenses     *workbook.Sheet
	references   *workbook.Sheet

	// cross-reference sheets, nil when the workbook was not supplied
	sensors    *workbook.Sheet
	measurands *workbook.Sheet
	disorders  *workbook.Sheet
	states     *workbook.Sheet
}

func (resourcesIngester) Ingest(ctx context.Context, books workbook.Set, m *statement.Map) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ingestScaffolding(module.Resources, books.Primary, m); err != nil {
		return err
	}

	var sheets resourceSheets
	var err error
	load := func(dst **workbook.Sheet, name string) {
		if err != nil {
			return
		}
		*dst, err = requireSheet(module.Resources, books.Primary, name)
	}
	load(&sheets.guideTypes, "guide_types")
	load(&sheets.guides, "guides")
	load(&sheets.projectTypes, "project_types")
	load(&sheets.projects, "projects")
	load(&sheets.groups, "groups")
	load(&sheets.people, "people")
	load(&sheets.languages, "languages")
	load(&sheets.licenses, "licenses")
	load(&sheets.references, "references")
	if err != nil {
		return err
	}

	if wb, ok := books.CrossRef(module.Sensors); ok {
		sheets.sensors, _ = wb.Sheet("sensors")
		sheets.measurands, _ = wb.Sheet("measurands")
	}
	if wb, ok := books.CrossRef(module.Disorders); ok {
		sheets.disorders, _ = wb.Sheet("disorders")
	}
	if wb, ok := books.CrossRef(module.States); ok {
		sheets.states, _ = wb.Sheet("states")
	}

	ingestGuideTypes(sheets.guideTypes, m)
	ingestGuides(sheets, m)
	ingestProjectTypes(sheets.projectTypes, m)
	ingestProjects(sheets, m)
	ingestPeople(sheets.people, m)
	ingestLanguages(sheets.languages, m)
	ingestLicenses(sheets.licenses, m)

	return nil
}

func ingestGuideTypes(guideTypes *workbook.Sheet, m *statement.Map) {
	for row := 0; row < guideTypes.Len(); row++ {
		guideType := guideTypes.Cell(row, "guide_type")
		if statement.IsEmptyValue(guideType) {
			continue
		}
		iri := statement.CheckPascalIRI(guideType)
		m.Add(iri, "rdfs:label", statement.LanguageString(guideType, ""))
		if sub := guideTypes.Cell(row, "subClassOf"); !statement.IsEmptyValue(sub) {
			m.Add(iri, "rdfs:subClassOf", statement.CheckIRI(sub))
		} else {
			m.Add(iri, "rdfs:subClassOf", ":ReferenceType")
		}
	}
}

func ingestGuides(sheets resourceSheets, m *statement.Map) {
	guides := sheets.guides
	for row := 0; row < guides.Len(); row++ {
		title := guides.Cell(row, "title")
		if statement.IsEmptyValue(title) {
			continue
		}
		iri := statement.CheckIRI(title)
		m.Add(iri, "a", ":BibliographicResource")
		m.Add(iri, "rdfs:label", statement.LanguageString(title, ""))
		m.Add(iri, ":hasTitle", statement.LanguageString(title, ""))

		if link := guides.Cell(row, "link"); !statement.IsEmptyValue(link) {
			m.Add(iri, ":hasWebsite", anyURI(link))
		}
		if authors := guides.Cell(row, "authors"); !statement.IsEmptyValue(authors) {
			m.Add(iri, ":hasAuthorList", statement.LanguageString(authors, ""))
		}
		if publisher := guides.Cell(row, "publisher"); !statement.IsEmptyValue(publisher) {
			m.Add(iri, ":hasPublisher", statement.CheckIRI(publisher))
		}
		if pubdate := guides.Cell(row, "pubdate"); !statement.IsEmptyValue(pubdate) {
			m.Add(iri, ":hasPublicationDate", statement.LanguageString(pubdate, ""))
		}
		for _, index := range indexList(guides.Cell(row, "indices_guide_type")) {
			if guideType, ok := valueByIndex(sheets.guideTypes, index, "guide_type"); ok {
				m.Add(iri, ":hasReferenceType", statement.CheckPascalIRI(guideType))
			}
		}
		switch gender, _ := parseIndex(guides.Cell(row, "index_gender")); gender {
		case 1:
			m.Add(iri, ":isAbout", ":Female")
		case 2:
			m.Add(iri, ":isAbout", ":Male")
		}
		for _, index := range indexList(guides.Cell(row, "indices_audience")) {
			if person, ok := valueByIndex(sheets.people, index, "person"); ok {
				m.Add(iri, ":hasAudienceType", statement.CheckPascalIRI(person))
			}
		}
		for _, index := range indexList(guides.Cell(row, "indices_subject_people")) {
			if person, ok := valueByIndex(sheets.people, index, "person"); ok {
				m.Add(iri, ":isAbout", statement.CheckPascalIRI(person))
			}
		}
		for _, column := range []string{"index_language_in_mhdb", "index_language_not_in_mhdb"} {
			if index, ok := parseIndex(guides.Cell(row, column)); ok {
				if language, found := valueByIndex(sheets.languages, index, "language"); found {
					m.Add(iri, ":hasLanguage", statement.CheckPascalIRI(language))
				}
			}
		}
		if index, ok := parseIndex(guides.Cell(row, "index_license")); ok {
			if license, found := valueByIndex(sheets.licenses, index, "license"); found {
				m.Add(iri, ":hasLicense", statement.CheckPascalIRI(license))
			}
		}
		for _, index := range indexList(guides.Cell(row, "indices_state")) {
			if state, ok := valueByIndex(sheets.states, index, "state"); ok {
				m.Add(iri, ":isAboutDomain", statement.CheckPascalIRI(state))
			}
		}
	}
}

func ingestProjectTypes(projectTypes *workbook.Sheet, m *statement.Map) {
	for row := 0; row < projectTypes.Len(); row++ {
		projectType := projectTypes.Cell(row, "project_type")
		if statement.IsEmptyValue(projectType) {
			continue
		}
		iri := statement.CheckPascalIRI(projectType)
		m.Add(iri, "rdfs:label", statement.LanguageString(projectType, ""))
		if def := projectTypes.Cell(row, "definition"); !statement.IsEmptyValue(def) {
			m.Add(iri, "rdfs:comment", statement.LanguageString(sanitize(def), ""))
		}
		for _, alias := range splitList(projectTypes.Cell(row, "aliases")) {
			m.Add(iri, "rdfs:label", statement.LanguageString(alias, ""))
		}
		for _, eq := range splitList(projectTypes.Cell(row, "equivalentClasses")) {
			m.Add(iri, "rdfs:equivalentClass", eq)
		}
		parents := indexList(projectTypes.Cell(row, "indices_project_type"))
		if len(parents) == 0 {
			m.Add(iri, "rdfs:subClassOf", ":ProjectCategory")
			continue
		}
		for _, index := range parents {
			if parent, ok := valueByIndex(projectTypes, index, "project_type"); ok {
				m.Add(iri, "rdfs:subClassOf", statement.CheckPascalIRI(parent))
			}
		}
	}
}

func ingestProjects(sheets resourceSheets, m *statement.Map) {
	projects := sheets.projects
	for row := 0; row < projects.Len(); row++ {
		project := projects.Cell(row, "project")
		if statement.IsEmptyValue(project) {
			continue
		}
		iri := statement.CheckIRI(project)
		m.Add(iri, "a", ":Project")
		m.Add(iri, "rdfs:label", statement.LanguageString(project, ""))

		if desc := projects.Cell(row, "description"); !statement.IsEmptyValue(desc) {
			m.Add(iri, "rdfs:comment", statement.LanguageString(sanitize(desc), ""))
		}
		if abbr := projects.Cell(row, "abbreviation"); !statement.IsEmptyValue(abbr) {
			m.Add(iri, ":hasAbbreviation", statement.CheckIRI(abbr))
		}
		if link := projects.Cell(row, "link"); !statement.IsEmptyValue(link) {
			m.Add(iri, ":hasWebsite", anyURI(link))
		}
		for _, index := range indexList(projects.Cell(row, "indices_project_type")) {
			if projectType, ok := valueByIndex(sheets.projectTypes, index, "project_type"); ok {
				m.Add(iri, ":hasProjectCategory", statement.CheckPascalIRI(projectType))
			}
		}
		for _, index := range indexList(projects.Cell(row, "indices_group")) {
			if group, ok := maintainerGroup(sheets.groups, index); ok {
				m.Add(iri, ":isMaintainedByGroup", statement.CheckIRI(group))
			}
		}
		for _, index := range indexList(projects.Cell(row, "indices_people_users")) {
			if person, ok := valueByIndex(sheets.people, index, "person"); ok {
				m.Add(iri, ":isUsedBy", statement.CheckIRI(person))
			}
		}
		for _, index := range indexList(projects.Cell(row, "indices_sensor")) {
			if sensor, ok := valueByIndex(sheets.sensors, index, "sensor"); ok {
				m.Add(iri, ":hasSubSystem", statement.CheckPascalIRI(sensor))
			}
		}
		for _, index := range indexList(projects.Cell(row, "indices_measurand")) {
			if measurand, ok := valueByIndex(sheets.measurands, index, "measurand"); ok {
				m.Add(iri, ":observes", statement.CheckPascalIRI(measurand))
			}
		}
		for _, index := range indexList(projects.Cell(row, "indices_languages")) {
			if language, ok := valueByIndex(sheets.languages, index, "language"); ok {
				m.Add(iri, ":hasLanguage", statement.CheckPascalIRI(language))
			}
		}
		for _, index := range indexList(projects.Cell(row, "indices_compatible_projects")) {
			if other, ok := valueByIndex(projects, index, "project"); ok {
				m.Add(iri, ":hasCompatibleProject", statement.CheckPascalIRI(other))
			}
		}
		for _, index := range indexList(projects.Cell(row, "indices_disorders")) {
			if disorder, ok := valueByIndex(sheets.disorders, index, "disorder"); ok {
				m.Add(iri, ":isAbout", statement.CheckPascalIRI(disorder))
			}
		}
		for _, index := range indexList(projects.Cell(row, "indices_reference")) {
			if source, ok := valueByIndex(sheets.references, index, "title"); ok {
				m.Add(iri, ":isReferencedBy", statement.CheckIRI(source))
			}
		}
	}
}

// maintainerGroup joins a group row's group and organization names into one
// identifier: "group_organization" when both are present.
func maintainerGroup(groups *workbook.Sheet, index int) (string, bool) {
	group, hasGroup := valueByIndex(groups, index, "group")
	org, hasOrg := valueByIndex(groups, index, "organization")
	switch {
	case hasGroup && hasOrg:
		return group + "_" + org, true
	case hasOrg:
		return org, true
	case hasGroup:
		return group, true
	default:
		return "", false
	}
}

func ingestPeople(people *workbook.Sheet, m *statement.Map) {
	for row := 0; row < people.Len(); row++ {
		person := people.Cell(row, "person")
		if statement.IsEmptyValue(person) {
			continue
		}
		iri := statement.CheckPascalIRI(person)
		m.Add(iri, "rdfs:label", statement.LanguageString(person, ""))

		if def := people.Cell(row, "definition"); !statement.IsEmptyValue(def) {
			m.Add(iri, "rdfs:comment", statement.LanguageString(sanitize(def), ""))
		}
		if link := people.Cell(row, "link_definition"); !statement.IsEmptyValue(link) {
			m.Add(iri, ":hasWebsite", anyURI(link))
		}
		for _, alias := range splitList(people.Cell(row, "aliases")) {
			m.Add(iri, "rdfs:label", statement.LanguageString(alias, ""))
		}
		for _, eq := range splitList(people.Cell(row, "equivalentClasses")) {
			m.Add(iri, "rdfs:equivalentClass", eq)
		}
		parents := indexList(people.Cell(row, "indices_person"))
		if len(parents) == 0 {
			m.Add(iri, "rdfs:subClassOf", ":PersonType")
			continue
		}
		for _, index := range parents {
			if parent, ok := valueByIndex(people, index, "person"); ok {
				m.Add(iri, "rdfs:subClassOf", statement.CheckPascalIRI(parent))
			}
		}
	}
}

func ingestLanguages(languages *workbook.Sheet, m *statement.Map) {
	for row := 0; row < languages.Len(); row++ {
		language := languages.Cell(row, "language")
		if statement.IsEmptyValue(language) {
			continue
		}
		iri := statement.CheckPascalIRI(language)
		m.Add(iri, "rdfs:label", statement.LanguageString(language, ""))

		if index, ok := parseIndex(languages.Cell(row, "index_language")); ok {
			if parent, found := valueByIndex(languages, index, "language"); found {
				m.Add(iri, "rdfs:subClassOf", statement.CheckPascalIRI(parent))
			}
		} else {
			m.Add(iri, "rdfs:subClassOf", ":Language")
		}
		for _, eq := range splitList(languages.Cell(row, "equivalentClasses")) {
			m.Add(iri, "rdfs:equivalentClass", eq)
		}
	}
}

func ingestLicenses(licenses *workbook.Sheet, m *statement.Map) {
	for row := 0; row < licenses.Len(); row++ {
		license := licenses.Cell(row, "license")
		if statement.IsEmptyValue(license) {
			continue
		}
		iri := statement.CheckPascalIRI(license)
		m.Add(iri, "rdfs:label", statement.LanguageString(license, ""))

		for _, eq := range splitList(licenses.Cell(row, "equivalentClasses")) {
			m.Add(iri, "rdfs:equivalentClass", eq)
		}
		parents := indexList(licenses.Cell(row, "indices_license"))
		if len(parents) == 0 {
			m.Add(iri, "rdfs:subClassOf", ":License")
			continue
		}
		for _, index := range parents {
			if parent, ok := valueByIndex(licenses, index, "license"); ok {
				m.Add(iri, "rdfs:subClassOf", statement.CheckPascalIRI(parent))
			}
		}
	}
}
