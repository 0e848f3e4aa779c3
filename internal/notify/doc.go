// Package notify is the notification boundary: the core decides when a
// notification fires and with what payload, and the Dispatcher fans it out
// to registered handlers. Rendering (on-screen alerts, sound, OS
// notifications) lives entirely behind the Handler interface.
package notify
