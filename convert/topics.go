package convert

// Topics the wheelchair bridge publishes on and listens to.
const (
	TopicPhonePose                 = "/phone_pose"
	TopicWheelchairMotion          = "/wheelchair_motion"
	TopicWheelchairMotionLinear    = "/wheelchair_motion_lin"
	TopicWheelchairMotionAngular   = "/wheelchair_motion_ang"
	TopicLidar                     = "/lidar_data"
	TopicHeartbeat                 = "/heartbeat"
	TopicCommandFeedbackPhone      = "/command_feedback_phone"
	TopicCommandFeedbackController = "/command_feedback_controller"
	TopicWheelchairControl         = "/wheelchair_control"
)
