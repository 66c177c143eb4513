// Package catalog holds the Category and Product entities. They carry no
// business rules beyond field validation.
package catalog
