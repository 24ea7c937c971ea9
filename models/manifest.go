package models

import "encoding/xml"

// ManifestFileName is the name of the manifest both locally and remotely.
const ManifestFileName = "config.xml"

// Manifest is the XML document kept next to the locale files:
//
//	<config>
//	  <version date="2024-01-01T00:00:00Z"/>
//	  <language code="fr_FR"/>
//	</config>
//
// Only the first version entry is authoritative; later ones are history.
type Manifest struct {
	XMLName   xml.Name           `xml:"config"`
	Versions  []ManifestVersion  `xml:"version"`
	Languages []ManifestLanguage `xml:"language"`
}

type ManifestVersion struct {
	Date string `xml:"date,attr"`
}

type ManifestLanguage struct {
	Code string `xml:"code,attr"`
}
