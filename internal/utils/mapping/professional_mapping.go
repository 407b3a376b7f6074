package mapping

import (
	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	"github.com/SscSPs/dispatch_ledger/internal/models"
)

// ToDomainProfessional converts a model Professional to a domain Professional
func ToDomainProfessional(m models.Professional) domain.Professional {
	return domain.Professional{
		ProfessionalID: m.ProfessionalID,
		Name:           m.Name,
		MonthlySalary:  m.MonthlySalary,
		WeeklySalary:   m.WeeklySalary,
	}
}

// ToDomainProfessionalSlice converts a slice of model Professionals to domain Professionals
func ToDomainProfessionalSlice(ms []models.Professional) []domain.Professional {
	ds := make([]domain.Professional, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProfessional(m)
	}
	return ds
}
