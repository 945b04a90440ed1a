// Package tenant restricts queries to the rows owned by one company.
package tenant

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Column is the owner key carried by every company scoped table.
const Column = "company_id"

// Scope filters on the statement's own table, so it stays unambiguous when
// the query carries a subquery or join on another company scoped table.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: Column},
			Value:  companyID,
		})
	}
}

// ScopeIDs is Scope narrowed to the given primary keys. An empty ids slice
// matches nothing.
func ScopeIDs(companyID string, ids []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = Scope(companyID)(db)
		if len(ids) == 0 {
			return db.Where("1 = 0")
		}
		return db.Where(clause.IN{
			Column: clause.Column{Table: clause.CurrentTable, Name: "id"},
			Values: toValues(ids),
		})
	}
}

func toValues(ids []string) []interface{} {
	out := make([]interface{}, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
