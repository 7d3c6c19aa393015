package model

type Supplier struct {
	CatalogBase

	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:50" json:"phone"`
}

func (Supplier) TableName() string { return "suppliers" }

func (s *Supplier) ApplyPatch(p CatalogPatch) {
	s.applyBase(p)
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
}
