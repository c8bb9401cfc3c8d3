package domain

import "time"

// Guest is one visit recorded at the kiosk. Rows are append-only.
type Guest struct {
	GuestID       string    `json:"guest_id"`       // UUID
	RegNumber     string    `json:"reg_number"`     // DDMMYYYY-NNN, advisory only
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	NationalID    *string   `json:"nik"`            // NIK, optional
	Origin        string    `json:"origin"`         // institution / address
	Position      *string   `json:"position"`       // jabatan, optional
	Department    *string   `json:"bidang"`         // one of DepartmentOptions, optional
	ContactNumber string    `json:"contact_number"` // WhatsApp number
	Purpose       string    `json:"purpose"`        // one of PurposeOptions
	Satisfaction  *string   `json:"satisfaction"`   // one of SatisfactionLevels, optional
	CreatedAt     time.Time `json:"created_at"`     // assigned by the store
}

// FullName joins first and last name with a single space.
func (g *Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}

// PurposeOptions lists the visit purposes offered by the form.
var PurposeOptions = []string{
	"Audiensi / Silaturahmi",
	"Koordinasi Perencanaan",
	"Rapat",
	"Konsultasi / Asistensi",
	"Kunjungan Kerja",
	"Undangan Khusus",
	"Seremoni",
	"Ekspedisi Surat",
}

// DepartmentOptions lists the bidang a visitor can be heading to.
var DepartmentOptions = []string{
	"Sekretariat",
	"Bidang Litbang Renbang",
	"Bidang Ekonomi",
	"Bidang Sosial Budaya",
	"Bidang Sarana Prasarana Wilayah",
}

// SatisfactionLevels is the 5-level service rating scale, best first.
var SatisfactionLevels = []string{
	"Sangat Puas",
	"Puas",
	"Cukup Puas",
	"Kurang Puas",
	"Tidak Puas",
}
