package report

import (
	"sort"
	"time"

	"github.com/avelio/profitab-api/internal/domain/entity"
)

// warningCollector sammelt Datenlücken dedupliziert; die Ausgabe ist sortiert,
// damit Berichte und Tests deterministisch sind.
type warningCollector struct {
	uncosted  map[string]struct{}
	platforms map[string]struct{}
	marketing map[string]struct{}
}

func newWarningCollector() *warningCollector {
	return &warningCollector{
		uncosted:  make(map[string]struct{}),
		platforms: make(map[string]struct{}),
		marketing: make(map[string]struct{}),
	}
}

func (w *warningCollector) uncostedSKU(sku string) {
	if sku != "" {
		w.uncosted[sku] = struct{}{}
	}
}

func (w *warningCollector) unknownPlatform(platform string) {
	if platform != "" {
		w.platforms[platform] = struct{}{}
	}
}

func (w *warningCollector) missingMarketingDate(dateKey string) {
	w.marketing[dateKey] = struct{}{}
}

func (w *warningCollector) collect() entity.Warnings {
	return entity.Warnings{
		UncostedSKUs:          sortedKeys(w.uncosted),
		UnknownPlatforms:      sortedKeys(w.platforms),
		MissingMarketingDates: sortedKeys(w.marketing),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// mustParseDateKey parst einen von entity.DateKey erzeugten Schlüssel zurück.
// Die Schlüssel stammen ausschließlich aus DateKey, daher kann das Parsen
// nicht fehlschlagen.
func mustParseDateKey(key string) time.Time {
	t, _ := time.ParseInLocation(time.DateOnly, key, time.UTC)
	return t
}
