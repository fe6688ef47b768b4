package seeders

var departmentsData = []string{
	"Cardiologie",
	"Radiologie",
	"Urgences",
	"Bloc opératoire",
	"Laboratoire",
	"Pédiatrie",
	"Maintenance biomédicale",
}

var categoriesData = []struct {
	Name        string
	Description string
}{
	{"Imagerie médicale", "Scanners, IRM, échographes et appareils de radiographie"},
	{"Monitorage", "Moniteurs patient, oxymètres et électrocardiographes"},
	{"Assistance respiratoire", "Respirateurs et concentrateurs d'oxygène"},
	{"Perfusion", "Pousse-seringues et pompes à perfusion"},
	{"Stérilisation", "Autoclaves et laveurs-désinfecteurs"},
	{"Laboratoire", "Automates d'analyse et centrifugeuses"},
}

var rolesData = []string{
	"admin",
	"chef service",
	"technicien",
	"utilisateur",
}
