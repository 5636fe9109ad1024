package seeder

import "skill-matrix/internal/domain/organisation"

// Defaults returns the seeders run on every boot. The catalogue file and the
// staff account are added by the caller when configured.
func Defaults() []Seeder {
	return []Seeder{
		OrganisationSeeder{Items: DefaultOrganisationItems()},
	}
}

func DefaultOrganisationItems() map[organisation.Kind][]string {
	return map[organisation.Kind][]string{
		organisation.KindGender: {
			"Female",
			"Male",
			"Non-binary",
			"Prefer not to say",
		},
		organisation.KindGrade: {
			"Executive Officer",
			"Higher Executive Officer",
			"Senior Executive Officer",
			"Grade 7",
			"Grade 6",
		},
		organisation.KindProfession: {
			"Data Science",
			"Economics",
			"Operational Research",
			"Social Research",
			"Statistics",
		},
		organisation.KindUnit: {
			"Analysis",
			"Data Engineering",
			"Data Science Hub",
		},
	}
}
