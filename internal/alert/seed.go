package alert

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SeedSampleAlerts loads the regional feed with sample data when the store
// is empty. Real deployments replace this with an ingestion pipeline.
func SeedSampleAlerts(ctx context.Context, store Store) error {
	existing, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	samples := []Alert{
		{Title: "Avian Influenza Outbreak", Severity: SeverityHigh, Description: "Detected in nearby poultry farm. Immediate biosecurity measures required.", Date: now},
		{Title: "African Swine Fever Alert", Severity: SeverityMedium, Description: "Increasing cases reported in the southern region.", Date: now},
		{Title: "New Biosecurity Protocol", Severity: SeverityLow, Description: "Updated guidelines for pig disinfection released.", Date: now},
	}
	for _, a := range samples {
		a.ID = uuid.NewString()
		if err := store.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
