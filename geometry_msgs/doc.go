// Package geometry_msgs holds the geometry primitives and the corrected
// stamped geometry messages (PointStamped, PoseStamped, TwistStamped).
//
// The primitives are plain values. The stamped messages embed the corrected
// std_msgs.Header, so their stamps use the sec/nanosec keys rosbridge expects.
package geometry_msgs
