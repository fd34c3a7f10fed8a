// api/handlers/script.go
package handlers

// trackerScript is the client-side beacon, served verbatim from
// GET /tracker.js. It is a fixed asset: the only variable part, the report
// endpoint, is derived in the browser from the script's own load location
// (with a same-origin relative fallback).
//
// The script suppresses consecutive duplicate reports for the same path,
// prefers navigator.sendBeacon with a fire-and-forget fetch fallback, wraps
// history.pushState/replaceState and listens for popstate to catch
// single-page-app navigation, and swallows every internal error so a failed
// report can never surface in the hosting page.
const trackerScript = `(() => {
  "use strict";

  var script = document.currentScript;
  var endpoint = "/send";
  try {
    endpoint = new URL((script && script.src) || "", location.href).origin + "/send";
  } catch (e) {}

  var lastPathname = null;

  function report() {
    try {
      var pathname = location.pathname || "/";
      if (pathname === lastPathname) return;
      lastPathname = pathname;
      var payload = JSON.stringify({ pathname: pathname });
      if (navigator.sendBeacon) {
        try {
          navigator.sendBeacon(endpoint, new Blob([payload], { type: "application/json" }));
          return;
        } catch (e) {}
      }
      fetch(endpoint, {
        method: "POST",
        headers: { "content-type": "application/json" },
        body: payload,
        keepalive: true,
        mode: "cors",
        credentials: "omit"
      }).catch(function () {});
    } catch (e) {}
  }

  var pushState = history.pushState;
  var replaceState = history.replaceState;
  history.pushState = function () {
    var result = pushState.apply(this, arguments);
    report();
    return result;
  };
  history.replaceState = function () {
    var result = replaceState.apply(this, arguments);
    report();
    return result;
  };
  addEventListener("popstate", report, true);

  if (document.readyState === "loading") {
    document.addEventListener("DOMContentLoaded", report, { once: true });
  } else {
    report();
  }
})();
`
