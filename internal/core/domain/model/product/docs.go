// Package product models the menu: products, their categories and the fields
// a partial update may change.
package product
