package model

import (
	"time"

	"github.com/google/uuid"
)

// Asset is a hardware inventory entry.
type Asset struct {
	ID                  uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID           uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	Type                string    `gorm:"type:varchar(50)" json:"type"` // PC, SERVER, MOBILE, OTHER
	MakeModel           string    `gorm:"type:varchar(100)" json:"make_model"`
	SerialNumber        string    `gorm:"type:varchar(100)" json:"serial_number"`
	AssignedTo          string    `gorm:"type:varchar(100)" json:"assigned_to"`
	Department          string    `gorm:"type:varchar(100)" json:"department"`
	Location            string    `gorm:"type:varchar(100)" json:"location"`
	HandlesPersonalData bool      `gorm:"default:true" json:"handles_personal_data"`
	DataCategory        string    `gorm:"type:varchar(50);default:COMMON" json:"data_category"` // COMMON, SPECIAL, JUDICIAL
	Criticality         string    `gorm:"type:varchar(20);default:MEDIUM" json:"criticality"`
	DiskEncrypted       bool      `gorm:"default:false" json:"disk_encrypted"`
	AntivirusInstalled  bool      `gorm:"default:false" json:"antivirus_installed"`
	Status              string    `gorm:"type:varchar(20);default:IN_USE" json:"status"` // IN_USE, RETIRED, MAINTENANCE
	InventoryCode       string    `gorm:"type:varchar(50)" json:"inventory_code"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Software is an application inventory entry.
type Software struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID      uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	Name           string    `gorm:"type:varchar(100)" json:"name"`
	Purpose        string    `gorm:"type:varchar(200)" json:"purpose"`
	Kind           string    `gorm:"type:varchar(20)" json:"kind"` // LOCAL, CLOUD, APP
	Supplier       string    `gorm:"type:varchar(100)" json:"supplier"`
	ServerLocation string    `gorm:"type:varchar(100)" json:"server_location"`
	Administrator  string    `gorm:"type:varchar(100)" json:"administrator"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MonitoredAsset is a critical host checked through the vulnerability
// scanner and counted in the technical dashboard.
type MonitoredAsset struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	CompanyID         uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	Name              string    `gorm:"type:varchar(100)" json:"name"`
	Kind              string    `gorm:"type:varchar(20);default:SERVER" json:"kind"` // SERVER, DB, WEB, NETWORK
	IPAddress         string    `gorm:"type:varchar(45)" json:"ip_address"`
	MonitoringPort    int       `gorm:"default:9100" json:"monitoring_port"`
	Active            bool      `gorm:"default:true" json:"active"`
	CPUAlarmThreshold int       `gorm:"default:90" json:"cpu_alarm_threshold"`
	TechnicalNotes    string    `gorm:"type:text" json:"technical_notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
