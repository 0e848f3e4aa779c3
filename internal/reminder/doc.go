// Package reminder schedules time-based reminder notifications for tasks
// with due dates.
//
// The Scheduler arms one timer per configured lead time ahead of a task's
// due date, tracks the handles for cancellation and rescheduling, and honors
// a per-task disabled set with default-on semantics. Timers are in-memory
// only: a process restart loses them, and re-arming on startup is the
// caller's responsibility via ScheduleAll.
package reminder
