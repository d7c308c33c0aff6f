// Package product contains the Product aggregate. A product carries its own
// details (name, barcode) plus a nullable reference to the box that owns it.
// The reference is mutated exclusively through AssignToBox and RemoveFromBox,
// which the Box aggregate invokes during membership operations; the detail
// Patch type has no path to it.
package product
