package database

// TableDef describes one table: its DDL and the columns callers may write.
type TableDef struct {
	Name    string
	Columns []string
	DDL     string
}

// HasColumn reports whether col is a writable column of the table.
func (t TableDef) HasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Table names
const (
	TableUsers           = "users"
	TableProjects        = "projects"
	TableMaterials       = "materials"
	TablePersonnel       = "personnel"
	TableSafetyIncidents = "safety_incidents"
	TableTransactions    = "transactions"
	TableTasks           = "tasks"
	TableDocuments       = "documents"
)

// Schema lists every table in creation order. Referenced tables come first.
var Schema = []TableDef{
	{
		Name:    TableUsers,
		Columns: []string{"username", "email", "password", "role", "status"},
		DDL: `CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'worker',
			status TEXT DEFAULT 'active',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Name: TableProjects,
		Columns: []string{"name", "location", "type", "priority", "start_date", "end_date",
			"budget", "duration", "progress", "status", "description", "created_by"},
		DDL: `CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			location TEXT,
			type TEXT,
			priority TEXT,
			start_date TEXT,
			end_date TEXT,
			budget REAL,
			duration INTEGER,
			progress INTEGER DEFAULT 0,
			status TEXT DEFAULT 'planning',
			description TEXT,
			created_by INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (created_by) REFERENCES users(id)
		)`,
	},
	{
		Name: TableMaterials,
		Columns: []string{"name", "category", "unit", "stockQuantity", "minStock", "unitPrice",
			"supplier", "description", "barcode"},
		DDL: `CREATE TABLE IF NOT EXISTS materials (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			category TEXT,
			unit TEXT,
			stockQuantity INTEGER DEFAULT 0,
			minStock INTEGER DEFAULT 0,
			unitPrice REAL,
			supplier TEXT,
			description TEXT,
			barcode TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Name: TablePersonnel,
		Columns: []string{"name", "position", "tcKimlik", "salary", "joinDate", "status",
			"contact", "email"},
		DDL: `CREATE TABLE IF NOT EXISTS personnel (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			position TEXT,
			tcKimlik TEXT UNIQUE,
			salary REAL,
			joinDate TEXT,
			status TEXT DEFAULT 'active',
			contact TEXT,
			email TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Name:    TableSafetyIncidents,
		Columns: []string{"date", "type", "description", "personnelId", "severity", "status"},
		DDL: `CREATE TABLE IF NOT EXISTS safety_incidents (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			type TEXT,
			description TEXT,
			personnelId INTEGER,
			severity TEXT,
			status TEXT DEFAULT 'open',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (personnelId) REFERENCES personnel(id)
		)`,
	},
	{
		Name: TableTransactions,
		Columns: []string{"project_id", "type", "amount", "currency", "description", "category",
			"date", "created_by"},
		DDL: `CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER,
			type TEXT NOT NULL,
			amount REAL NOT NULL,
			currency TEXT DEFAULT 'TL',
			description TEXT,
			category TEXT,
			date TEXT,
			created_by INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects(id),
			FOREIGN KEY (created_by) REFERENCES users(id)
		)`,
	},
	{
		Name: TableTasks,
		Columns: []string{"project_id", "title", "description", "assigned_to", "status",
			"priority", "start_date", "end_date", "progress"},
		DDL: `CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			assigned_to INTEGER,
			status TEXT DEFAULT 'pending',
			priority TEXT DEFAULT 'medium',
			start_date TEXT,
			end_date TEXT,
			progress INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects(id),
			FOREIGN KEY (assigned_to) REFERENCES personnel(id)
		)`,
	},
	{
		Name:    TableDocuments,
		Columns: []string{"project_id", "title", "file_path", "file_type", "uploaded_by"},
		DDL: `CREATE TABLE IF NOT EXISTS documents (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER,
			title TEXT NOT NULL,
			file_path TEXT,
			file_type TEXT,
			uploaded_by INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects(id),
			FOREIGN KEY (uploaded_by) REFERENCES users(id)
		)`,
	},
}

// Table looks up a table definition by name.
func Table(name string) (TableDef, bool) {
	for _, t := range Schema {
		if t.Name == name {
			return t, true
		}
	}
	return TableDef{}, false
}
