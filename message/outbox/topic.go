package outbox

// topic is the single outbox forwarder topic; the original destination
// topic travels inside the forwarder envelope.
const topic = "events_to_forward"
