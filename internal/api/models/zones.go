package models

import (
	"github.com/jroosing/bindman/internal/manager"
	"github.com/jroosing/bindman/internal/zonefile"
)

// ZoneListResponse wraps the zone listing.
type ZoneListResponse struct {
	Zones []manager.Zone `json:"zones"`
	Count int            `json:"count"`
}

// RecordSetsResponse wraps a zone's recordsets.
type RecordSetsResponse struct {
	Zone       string               `json:"zone"`
	RecordSets []zonefile.RecordSet `json:"recordsets"`
	Count      int                  `json:"count"`
}

// ReplaceRecordSetsResponse reports a completed recordset replacement.
type ReplaceRecordSetsResponse struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

// ZoneExportResponse carries a zone's raw record file text.
type ZoneExportResponse struct {
	Zone string `json:"zone"`
	Text string `json:"text"`
}
