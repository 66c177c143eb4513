// Package customer holds the Customer entity and its Address.
package customer
