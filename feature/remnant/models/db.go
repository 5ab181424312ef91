package models

import "time"

// Upload represents the 'uploads' table: one raw log kept in object storage.
type Upload struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	UploadDate   string    `gorm:"column:upload_date;size:10;index" json:"upload_date"` // YYYY-MM-DD
	OrigFilename string    `gorm:"column:orig_filename;size:255" json:"orig_filename"`
	StoredPath   string    `gorm:"column:stored_path;size:512" json:"stored_path"`
	Size         int64     `gorm:"column:size" json:"size"`
	MD5          string    `gorm:"column:md5;size:32" json:"md5"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name for Upload.
func (Upload) TableName() string {
	return "uploads"
}

// AnalysisRun represents the 'analysis_runs' table: one persisted analysis.
type AnalysisRun struct {
	ID           uint         `gorm:"column:id;primaryKey" json:"id"`
	Digest       string       `gorm:"column:digest;size:64;index" json:"digest"` // sha256 of the raw log
	Source       string       `gorm:"column:source;size:255" json:"source"`
	UploadID     *uint        `gorm:"column:upload_id;index" json:"upload_id,omitempty"`
	TotalSites   int          `gorm:"column:total_sites" json:"total_sites"`
	RemnantSites int          `gorm:"column:remnant_sites" json:"remnant_sites"`
	Status       string       `gorm:"column:status;size:16" json:"status"` // Normal, Abnormal
	CreatedAt    time.Time    `gorm:"column:created_at" json:"created_at"`
	Sites        []SiteRecord `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"sites,omitempty"`
	Links        []LinkRecord `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"links,omitempty"`
}

// TableName overrides the table name for AnalysisRun.
func (AnalysisRun) TableName() string {
	return "analysis_runs"
}

// SiteRecord represents the 'analysis_sites' table: the verdict of one site
// within a run. Highlighted lines are stored newline-joined.
type SiteRecord struct {
	ID                   uint   `gorm:"column:id;primaryKey" json:"id"`
	RunID                uint   `gorm:"column:run_id;index" json:"run_id"`
	Address              string `gorm:"column:address;size:64" json:"address"`
	Name                 string `gorm:"column:name;size:255" json:"name"`
	Scheme               string `gorm:"column:scheme;size:16" json:"scheme"`
	Outcome              string `gorm:"column:outcome;size:16" json:"outcome"`
	HasMismatch          bool   `gorm:"column:has_mismatch" json:"has_mismatch"`
	HighlightedCall      string `gorm:"column:highlighted_call;type:text" json:"highlighted_call"`
	HighlightedInventory string `gorm:"column:highlighted_inventory;type:text" json:"highlighted_inventory"`
}

// TableName overrides the table name for SiteRecord.
func (SiteRecord) TableName() string {
	return "analysis_sites"
}

// LinkRecord represents the 'analysis_links' table: the highlighted-row
// count of one link within a run.
type LinkRecord struct {
	ID     uint   `gorm:"column:id;primaryKey" json:"id"`
	RunID  uint   `gorm:"column:run_id;index" json:"run_id"`
	Source string `gorm:"column:source;size:255" json:"source"`
	Dest   string `gorm:"column:dest;size:255" json:"dest"`
	Count  int    `gorm:"column:count" json:"count"`
}

// TableName overrides the table name for LinkRecord.
func (LinkRecord) TableName() string {
	return "analysis_links"
}

// Tables lists every model owned by the remnant feature, for migration.
func Tables() []any {
	return []any{&Upload{}, &AnalysisRun{}, &SiteRecord{}, &LinkRecord{}}
}
