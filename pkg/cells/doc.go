// Package cells implements the box model the node interior layout is built
// on.
//
// A [Cell] is a rectangle that knows the minimum size it needs and whether
// that minimum counts towards its parent's minimum. Four kinds exist:
//
//   - [AtomicCell]: a leaf with padding and a minimum content area
//   - [LabelCell]: a leaf holding labels stacked on top of each other
//   - [StripContainerCell]: up to three children along one axis
//     (begin, center, end)
//   - [GridContainerCell]: a three by three grid of children
//
// # Sizing and Layout
//
// Minimum sizes are pure functions of padding and content. A cell that does
// not contribute to its parent's minimum width or height still exists and is
// still laid out, but the parent ignores it while computing its own minimum.
//
// Layout is top-down and split by axis: once a container's rectangle has been
// assigned, LayoutChildrenHorizontally assigns x and width to its children
// and recurses, LayoutChildrenVertically does the same for y and height.
// Both passes are idempotent for an unchanged rectangle.
package cells
