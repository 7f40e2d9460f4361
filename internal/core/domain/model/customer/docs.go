// Package customer models registered customers, identified by CPF.
package customer
