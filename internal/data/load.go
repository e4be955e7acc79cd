package data

import "fmt"

// LoadAll загружает все статические таблицы в порядке зависимостей.
func LoadAll() error {
	steps := []struct {
		name string
		load func() error
	}{
		{"skills", LoadSkills},
		{"buffer skills", LoadBufferSkills},
		{"buylists", LoadBuylists},
		{"multisell", LoadMultisell},
	}
	for _, s := range steps {
		if err := s.load(); err != nil {
			return fmt.Errorf("loading %s: %w", s.name, err)
		}
	}
	return nil
}
