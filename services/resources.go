package services

import "esantiye/database"

// ResourceSpec declares how one entity is listed and created.
type ResourceSpec struct {
	// Name is the route segment and the key used in statistics
	Name  string
	Table string

	// Required is the single mandatory field. It is also the only field
	// persisted on create.
	Required        string
	RequiredMessage string
	CreatedMessage  string

	NewestFirst bool
	Creatable   bool
}

var (
	Projects = ResourceSpec{
		Name:            "projects",
		Table:           database.TableProjects,
		Required:        "name",
		RequiredMessage: "Proje adı gereklidir.",
		CreatedMessage:  "Proje eklendi",
		NewestFirst:     true,
		Creatable:       true,
	}

	Materials = ResourceSpec{
		Name:            "materials",
		Table:           database.TableMaterials,
		Required:        "name",
		RequiredMessage: "Malzeme adı gerekli.",
		Creatable:       true,
	}

	Personnel = ResourceSpec{
		Name:            "personnel",
		Table:           database.TablePersonnel,
		Required:        "name",
		RequiredMessage: "İsim gerekli.",
		Creatable:       true,
	}

	// Tasks and transactions are listed only; no create route exists for them.
	Tasks = ResourceSpec{
		Name:  "tasks",
		Table: database.TableTasks,
	}

	Transactions = ResourceSpec{
		Name:  "transactions",
		Table: database.TableTransactions,
	}
)

// Resources lists every exposed resource in route registration order.
var Resources = []ResourceSpec{Projects, Materials, Personnel, Tasks, Transactions}
