package repos

import "github.com/jmoiron/sqlx"

type CustomerRepo struct{ db *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// IDsByCustomerNumber resolves customer ids whose customer number matches a
// prebuilt parameterized condition (the cust_no column is part of the clause).
func (r *CustomerRepo) IDsByCustomerNumber(clause string, args []any) ([]string, error) {
	var ids []string
	err := r.db.Select(&ids, `SELECT id FROM customers WHERE `+clause, args...)
	return ids, err
}
