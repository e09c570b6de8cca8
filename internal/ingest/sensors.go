package ingest

import (
	"context"

	"github.com/goliatone/go-mhdb/pkg/module"
	"github.com/goliatone/go-mhdb/pkg/statement"
	"github.com/goliatone/go-mhdb/pkg/workbook"
)

// sensorsIngester maps the sensors workbook: sensing devices, the measurands
// they observe, and measurement scales.
type sensorsIngester struct{}

var _ Ingester = sensorsIngester{}

func (sensorsIngester) Module() module.Name { return module.Sensors }

func (sensorsIngester) Ingest(ctx context.Context, books workbook.Set, m *statement.Map) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ingestScaffolding(module.Sensors, books.Primary, m); err != nil {
		return err
	}

	sensors, err := requireSheet(module.Sensors, books.Primary, "sensors")
	if err != nil {
		return err
	}
	measurands, err := requireSheet(module.Sensors, books.Primary, "measurands")
	if err != nil {
		return err
	}
	scales, err := requireSheet(module.Sensors, books.Primary, "scales")
	if err != nil {
		return err
	}

	ingestSensorRows(sensors, m)
	ingestMeasurands(measurands, sensors, m)
	ingestScales(scales, m)

	return nil
}

func ingestSensorRows(sensors *workbook.Sheet, m *statement.Map) {
	for row := 0; row < sensors.Len(); row++ {
		sensor := sensors.Cell(row, "sensor")
		if statement.IsEmptyValue(sensor) {
			continue
		}
		iri := statement.CheckPascalIRI(sensor)
		m.Add(iri, "rdfs:label", statement.LanguageString(sensor, ""))

		for _, alias := range splitList(sensors.Cell(row, "aliases")) {
			m.Add(iri, "rdfs:label", statement.LanguageString(alias, ""))
		}
		if def := sensors.Cell(row, "definition"); !statement.IsEmptyValue(def) {
			m.Add(iri, "rdfs:comment", statement.LanguageString(sanitize(def), ""))
		}
		if link := sensors.Cell(row, "definition_link"); !statement.IsEmptyValue(link) {
			m.Add(iri, ":hasWebsite", anyURI(link))
		}
		m.Add(iri, "rdfs:subClassOf", ":SensingDevice")
		for _, eq := range splitList(sensors.Cell(row, "equivalentClasses")) {
			m.Add(iri, "rdfs:equivalentClass", eq)
		}
	}
}

func ingestMeasurands(measurands, sensors *workbook.Sheet, m *statement.Map) {
	for row := 0; row < measurands.Len(); row++ {
		measurand := measurands.Cell(row, "measurand")
		if statement.IsEmptyValue(measurand) {
			continue
		}
		iri := statement.CheckPascalIRI(measurand)
		m.Add(iri, "rdfs:label", statement.LanguageString(measurand, ""))

		if def := measurands.Cell(row, "measurand_definition"); !statement.IsEmptyValue(def) {
			m.Add(iri, "rdfs:comment", statement.LanguageString(sanitize(def), ""))
		}
		if link := measurands.Cell(row, "measurand_definition_link"); !statement.IsEmptyValue(link) {
			m.Add(iri, ":hasWebsite", anyURI(link))
		}
		m.Add(iri, "rdfs:subClassOf", ":Measurand")
		for _, eq := range splitList(measurands.Cell(row, "measurand_equivalentClasses")) {
			m.Add(iri, "rdfs:equivalentClass", eq)
		}
		for _, alias := range splitList(measurands.Cell(row, "aliases")) {
			m.Add(iri, "rdfs:label", statement.LanguageString(alias, ""))
		}

		// each measurand row also describes a sensor type and the sensors
		// that fall under it
		sensorType := measurands.Cell(row, "sensor_type")
		if statement.IsEmptyValue(sensorType) {
			continue
		}
		typeIRI := statement.CheckPascalIRI(sensorType)
		m.Add(typeIRI, "rdfs:label", statement.LanguageString(sensorType, ""))
		if def := measurands.Cell(row, "sensor_type_definition"); !statement.IsEmptyValue(def) {
			m.Add(typeIRI, "rdfs:comment", statement.LanguageString(sanitize(def), ""))
		}
		if link := measurands.Cell(row, "sensor_type_definition_link"); !statement.IsEmptyValue(link) {
			m.Add(typeIRI, ":hasWebsite", anyURI(link))
		}
		for _, eq := range splitList(measurands.Cell(row, "sensor_type_equivalentClasses")) {
			m.Add(typeIRI, "rdfs:equivalentClass", eq)
		}
		for _, index := range indexList(measurands.Cell(row, "indices_sensor")) {
			if sensor, ok := valueByIndex(sensors, index, "sensor"); ok {
				m.Add(statement.CheckPascalIRI(sensor), "rdfs:subClassOf", typeIRI)
			}
		}
	}
}

func ingestScales(scales *workbook.Sheet, m *statement.Map) {
	for row := 0; row < scales.Len(); row++ {
		scale := scales.Cell(row, "scale")
		if statement.IsEmptyValue(scale) {
			continue
		}
		iri := statement.CheckPascalIRI(scale)
		m.Add(iri, "rdfs:label", statement.LanguageString(scale, ""))

		if def := scales.Cell(row, "definition"); !statement.IsEmptyValue(def) {
			m.Add(iri, "rdfs:comment", statement.LanguageString(sanitize(def), ""))
		}
		for _, eq := range splitList(scales.Cell(row, "equivalentClasses")) {
			m.Add(iri, "rdfs:equivalentClass", eq)
		}
		for _, alias := range splitList(scales.Cell(row, "aliases")) {
			m.Add(iri, "rdfs:label", statement.LanguageString(alias, ""))
		}

		parents := indexList(scales.Cell(row, "indices_scale"))
		if len(parents) == 0 {
			m.Add(iri, "rdfs:subClassOf", ":Scale")
			continue
		}
		for _, index := range parents {
			if parent, ok := valueByIndex(scales, index, "scale"); ok {
				m.Add(iri, "rdfs:subClassOf", statement.CheckPascalIRI(parent))
			}
		}
	}
}
